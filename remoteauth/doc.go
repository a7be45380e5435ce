// Package remoteauth builds signed remote authentication URLs that let a
// trusted application vouch for a user's identity to a hosted support
// platform.
//
// The URL carries the user's claims and an MD5 hash over the shared secret
// token and a fixed subset of the claims, which the platform recomputes to
// verify the request:
//
//	hash = md5(token + name + email + external_id + remote_photo_url + timestamp)
//
// The field order and the algorithm are part of the platform's contract and
// must not change.
//
// # Quick Start
//
//	s := remoteauth.NewSettings()
//	s.SetToken("shared-secret")
//	s.SetAuthURL("https://support.example.com/access/remote")
//
//	u, err := s.BuildURL(remoteauth.Fields{
//	    Name:  "Jane Doe",
//	    Email: "jane@example.com",
//	    Tags:  remoteauth.JoinTags("vip", "beta"),
//	})
//
// Any value with Name() and Email() methods can be used instead of Fields;
// ID(), Organization() and Tags() are picked up when present:
//
//	u, err := s.BuildURL(remoteauth.FromIdentity(user))
//
// # Environment Configuration
//
// The default Settings are read from BEAVER_REMOTEAUTH_TOKEN and
// BEAVER_REMOTEAUTH_URL on first use:
//
//	u, err := remoteauth.BuildURL(remoteauth.Fields{Name: "Jane", Email: "jane@example.com"})
//
// Unset values are not an error until the builder needs them, at which point
// ErrInvalidConfig is returned.
//
// # JWT Single Sign-On
//
// BuildJWTURL produces the HS256 JWT variant accepted by newer endpoints from
// the same Settings and sources.
package remoteauth
