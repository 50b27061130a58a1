/*
Package pinpoint locates the boundary between the good prefix and the bad suffix
of an ordered list of opaque items, such as commit hashes, version strings or
configuration values.

The easiest way to get started is to create a [Session], either manually or by
passing a yaml config to [GetSessionFromConfig]. A session wires together the
item list, an optional state-transition command, the test command and an
[Oracle] supplying the verdicts. For a session to work, at least the following
fields have to be populated:
  - Items or ItemsFile
  - TestCommand

Calling [Session.Run] then performs the whole bisection: for every candidate
item the state and test commands are run with every occurrence of the
placeholder token replaced by the item's value, after which the oracle is asked
for a verdict. The run ends with a [Report] naming the last good and first bad
item together with any residual uncertainty.

Alternatively, [Session.Start] runs the session in the background and returns
two channels. The first of these channels contains [Candidate]-s, which are to
be judged using the [Candidate.Good], [Candidate.Bad] and [Candidate.Skip]
methods. The latter channel contains the final [Report] once the bisection is
done.

Callers that want full control over testing can bypass sessions entirely and
drive an [Engine] with their own test function.
*/
package pinpoint
