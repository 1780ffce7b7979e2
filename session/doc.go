// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session creates per-device session identities.

A session is generated once on first load, persisted alongside the other
records, and survives everything except an explicit reset. Even a reset
keeps the id, clearing only the voting flags:

	sess := session.New()

There is no authentication. The id is a plain UUID used to keep a device's
voting state apart from its exported data.
*/
package session
