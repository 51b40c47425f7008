/*
Package ports defines the driven-side interfaces of the pipeline: the session
backend and the pluggable capabilities (research provider, text generator,
outreach generator).

It also ships a reusable contract test (RunSessionBackendContract) so every
backend adapter proves the same behavior.
*/
package ports
