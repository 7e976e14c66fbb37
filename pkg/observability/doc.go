/*
Package observability provides tools for monitoring Spool engines.

It exposes prometheus collectors wired as TraceHooks, so metrics ride the
same observation channel as tracing: attach the hooks to an engine and
every finished run is counted by machine and outcome, with step counts
and tape sizes observed into histograms.
*/
package observability
