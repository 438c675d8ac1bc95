package media

import "errors"

// Error kinds, mirroring the failure classes uploads can hit.
const (
	KindConfiguration  = "configuration"
	KindAuthentication = "authentication"
	KindUpload         = "upload"
	KindTransport      = "transport"
)

// Error is a typed upload failure. Kind distinguishes configuration problems
// (detected before any network call), remote authentication rejections,
// generic remote rejections and transport-level failures.
type Error struct {
	Kind    string
	Message string
	// Status is the HTTP status of the remote rejection, 0 when no
	// response was received.
	Status int
}

func (e *Error) Error() string {
	return e.Message
}

// IsKind reports whether err is a media Error of the given kind.
func IsKind(err error, kind string) bool {
	var me *Error
	return errors.As(err, &me) && me.Kind == kind
}
