package webserver

import (
	"encoding/gob"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/talkincode/stockpilot/internal/domain"
	"go.uber.org/zap"
)

const sessionName = "stockpilot_session"

const (
	sessKeyUserID   = "user_id"
	sessKeyUsername = "username"
	sessKeyRole     = "role"
)

// Flash is a one-shot notification carried across a redirect.
type Flash struct {
	Level   string
	Message string
}

func init() {
	gob.Register(Flash{})
}

// SessionUser is the authenticated principal attached to a session.
type SessionUser struct {
	ID       int64
	Username string
	Role     domain.Role
}

// SignIn binds the user to the session.
func SignIn(c echo.Context, user *domain.SysUser) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	sess.Options.Path = "/"
	sess.Options.HttpOnly = true
	sess.Options.MaxAge = 86400 * 7
	sess.Values[sessKeyUserID] = user.ID
	sess.Values[sessKeyUsername] = user.Username
	sess.Values[sessKeyRole] = string(user.Role)
	return sess.Save(c.Request(), c.Response())
}

// SignOut clears the session.
func SignOut(c echo.Context) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	sess.Options.Path = "/"
	delete(sess.Values, sessKeyUserID)
	delete(sess.Values, sessKeyUsername)
	delete(sess.Values, sessKeyRole)
	return sess.Save(c.Request(), c.Response())
}

// CurrentUser returns the session principal, or nil when anonymous.
func CurrentUser(c echo.Context) *SessionUser {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return nil
	}
	id, ok := sess.Values[sessKeyUserID].(int64)
	if !ok || id == 0 {
		return nil
	}
	username, _ := sess.Values[sessKeyUsername].(string)
	role, _ := sess.Values[sessKeyRole].(string)
	return &SessionUser{ID: id, Username: username, Role: domain.Role(role)}
}

// SetFlash queues a one-shot notification for the next rendered page.
func SetFlash(c echo.Context, level, message string) {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		zap.L().Warn("flash: session unavailable", zap.Error(err))
		return
	}
	sess.Options.Path = "/"
	sess.AddFlash(Flash{Level: level, Message: message})
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		zap.L().Warn("flash: session save failed", zap.Error(err))
	}
}

// Flashes pops all queued notifications.
func Flashes(c echo.Context) []Flash {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return nil
	}
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = sess.Save(c.Request(), c.Response())
	flashes := make([]Flash, 0, len(raw))
	for _, f := range raw {
		if flash, ok := f.(Flash); ok {
			flashes = append(flashes, flash)
		}
	}
	return flashes
}
