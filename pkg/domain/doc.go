/*
Package domain contains the core models of the sales pipeline.

It defines the session shared between stages, the fixed record schemas the
tools exchange (research, score, outreach), and the error taxonomy. This
package is kept pure and free of external dependencies like I/O or
persistence.
*/
package domain
