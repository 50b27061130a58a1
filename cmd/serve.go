package cmd

import (
	"os"

	"github.com/fkleist/pinpoint/internal/server"
	"github.com/fkleist/pinpoint/pkg/pinpoint"
	"github.com/phayes/freeport"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve session.yml",
	Short: "Start a server for bisecting an item list based on a session.yml",
	Long: `Start a server for bisecting an item list based on a session.yml.

Calling this command results in a RESTful HTTP server being created, with
whose API the bisection can be driven by any client: GET /candidate returns
the next item to judge (or the final report once the bisection is done), and
POST /good/:candidateId, /bad/:candidateId and /skip/:candidateId submit the
verdict for a previously fetched candidate.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sessionYaml, err := os.Open(args[0])
		if err != nil {
			logrus.Fatalf("Failed to open session yaml - %v", err)
		}
		defer sessionYaml.Close()
		session, err := pinpoint.GetSessionFromConfig(sessionYaml)
		if err != nil {
			logrus.Fatalf("Failed to read session config from yaml - %v", err)
		}
		session.Log = newLogger()

		candidateChan, reportChan, err := session.Start()
		if err != nil {
			logrus.Fatalf("Failed to start session - %v", err)
		}

		port := servePort
		if port == 0 {
			port, err = freeport.GetFreePort()
			if err != nil {
				logrus.Fatalf("Failed to find a free port - %v", err)
			}
			logrus.Infof("Serving on port %d", port)
		}

		serverType := server.HTTP
		if _, err := server.NewServer(serverType, port, candidateChan, reportChan); err != nil {
			logrus.Fatalf("Failed to start webserver - %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVarP(&servePort, "port", "p", 40031, "The port on which to start the server, or 0 for a random free port")
}
