package remoteauth

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

// Source supplies the identity claims for a remote auth URL. It is
// implemented by Fields and IdentitySource.
type Source interface {
	resolve() Fields
}

// Fields carries identity claims explicitly. Empty optional fields are
// left out of the generated URL.
type Fields struct {
	Name           string
	Email          string
	ExternalID     string
	Organization   string
	Tags           string // comma separated, see JoinTags
	RemotePhotoURL string

	// Timestamp defaults to the current time when zero
	Timestamp time.Time
}

func (f Fields) resolve() Fields {
	return f
}

// Identity is a user-like value exposing the two mandatory claims.
type Identity interface {
	Name() string
	Email() string
}

// ExternalIdentifier is implemented by identities that carry a stable id,
// sent as external_id.
type ExternalIdentifier interface {
	ID() string
}

// Organizer is implemented by identities that belong to an organization.
type Organizer interface {
	Organization() string
}

// Tagger is implemented by identities that carry comma separated tags.
type Tagger interface {
	Tags() string
}

// IdentitySource reads claims from an Identity. Non-empty values in
// Explicit take precedence over the identity's accessors; RemotePhotoURL
// and Timestamp can only be given through Explicit.
type IdentitySource struct {
	Identity Identity
	Explicit Fields
}

// FromIdentity wraps a user-like value as a Source
func FromIdentity(identity Identity) IdentitySource {
	return IdentitySource{Identity: identity}
}

// With returns a copy of the source with explicit overrides
func (s IdentitySource) With(explicit Fields) IdentitySource {
	s.Explicit = explicit
	return s
}

func (s IdentitySource) resolve() Fields {
	f := s.Explicit
	u := s.Identity
	if u == nil {
		return f
	}

	if f.Name == "" {
		f.Name = u.Name()
	}
	if f.Email == "" {
		f.Email = u.Email()
	}
	if v, ok := u.(ExternalIdentifier); ok && f.ExternalID == "" {
		f.ExternalID = v.ID()
	}
	if v, ok := u.(Organizer); ok && f.Organization == "" {
		f.Organization = v.Organization()
	}
	if v, ok := u.(Tagger); ok && f.Tags == "" {
		f.Tags = v.Tags()
	}
	return f
}

// resolveFields collapses a Source into one field set and checks the
// mandatory claims.
func resolveFields(src Source) (Fields, error) {
	var f Fields
	if src != nil {
		f = src.resolve()
	}

	required := []struct {
		name  string
		value string
	}{
		{"name", f.Name},
		{"email", f.Email},
	}
	for _, r := range required {
		if err := validation.Validate(strings.TrimSpace(r.value), validation.Required); err != nil {
			return Fields{}, &RequiredFieldError{Field: r.name, Err: err}
		}
	}

	return f, nil
}

// JoinTags trims each tag and joins the non-blank ones with commas.
func JoinTags(tags ...string) string {
	kept := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			kept = append(kept, tag)
		}
	}
	return strings.Join(kept, ",")
}
