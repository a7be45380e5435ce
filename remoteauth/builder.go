package remoteauth

import (
	"crypto/md5"
	"encoding/hex"
	"net/url"
	"strconv"
)

// Query parameter names understood by the remote auth endpoint
const (
	ParamName           = "name"
	ParamEmail          = "email"
	ParamTimestamp      = "timestamp"
	ParamExternalID     = "external_id"
	ParamOrganization   = "organization"
	ParamTags           = "tags"
	ParamRemotePhotoURL = "remote_photo_url"
	ParamHash           = "hash"
)

// BuildURL returns the remote auth URL for src: the auth URL followed by the
// encoded claims and their hash. Missing name or email fails with
// ErrRequiredField before anything is hashed; an unset token or auth URL fails
// with ErrInvalidConfig.
func (s *Settings) BuildURL(src Source) (string, error) {
	f, err := resolveFields(src)
	if err != nil {
		return "", err
	}

	timestamp := s.timestamp(f)

	token, err := s.Token()
	if err != nil {
		return "", err
	}
	hash := Hash(token, f.Name, f.Email, f.ExternalID, f.RemotePhotoURL, timestamp)

	authURL, err := s.AuthURL()
	if err != nil {
		return "", err
	}

	q := url.Values{}
	q.Set(ParamName, f.Name)
	q.Set(ParamEmail, f.Email)
	q.Set(ParamTimestamp, timestamp)
	setIfPresent(q, ParamExternalID, f.ExternalID)
	setIfPresent(q, ParamOrganization, f.Organization)
	setIfPresent(q, ParamTags, f.Tags)
	setIfPresent(q, ParamRemotePhotoURL, f.RemotePhotoURL)
	q.Set(ParamHash, hash)

	s.log().Debug("built remote auth url",
		"external_id", f.ExternalID != "",
		"organization", f.Organization != "",
		"tags", f.Tags != "",
		"remote_photo_url", f.RemotePhotoURL != "",
		"timestamp", timestamp,
	)

	return authURL + "?" + q.Encode(), nil
}

// Hash computes the hex MD5 digest the remote auth endpoint verifies. Inputs
// are concatenated in this exact order; absent optional claims are passed as
// empty strings.
func Hash(token, name, email, externalID, remotePhotoURL, timestamp string) string {
	h := md5.New()
	for _, part := range []string{token, name, email, externalID, remotePhotoURL, timestamp} {
		h.Write([]byte(part))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// timestamp renders the claim time in epoch seconds
func (s *Settings) timestamp(f Fields) string {
	ts := f.Timestamp
	if ts.IsZero() {
		ts = s.clock()
	}
	return strconv.FormatInt(ts.Unix(), 10)
}

func setIfPresent(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
