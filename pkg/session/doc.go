/*
Package session implements the in-process session store.

It layers lifecycle semantics (create with overwrite warning, merging
updates, absent-as-signal lookups) over a pluggable ports.SessionBackend,
so the in-memory backend can be swapped for a networked one without
changing the stages.
*/
package session
