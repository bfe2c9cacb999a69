// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth implements the administrator capability for the Book Vote API.

Member identity itself is a plain name (the club is six people who trust
each other); only the administrative operations — deleting someone else's
book, clearing all ballots, bulk import — are gated.

The admin key is an HMAC of the club name under a secret salt:

	key := auth.GenerateAdminKey(cfg.ClubName, cfg.AdminKeySalt)

Admin requests present it in the X-Admin-Key header and it is compared in
constant time via ValidateAdminKey.
*/
package auth
