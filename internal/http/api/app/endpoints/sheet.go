package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/openummah/masjidmap/internal/http/api/app/packets"
	"github.com/openummah/masjidmap/internal/session"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// SheetSocket streams the bottom-sheet gesture dialogue for one session:
// the shell sends start/move/end events (plus animation frames while a
// settle is running) and receives clamped offsets and settle commands. The
// platform delivers one drag at a time, so frames on a single socket are
// handled strictly in order.
func SheetSocket(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Param("token")
		sess, ok := sessions.Get(token)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Error().Err(err).Str("token", token).Msg("sheet socket upgrade failed")
			return
		}

		log.Info().Str("token", token).Msg("sheet socket connected")
		defer func() {
			log.Info().Str("token", token).Msg("sheet socket disconnected")
			conn.Close()
		}()

		for {
			var event packets.GestureEvent
			if err := conn.ReadJSON(&event); err != nil {
				break
			}

			switch event.Type {
			case "start":
				sess.StartDrag()

			case "move":
				offset, opacity := sess.Drag(event.Translation)
				if err := conn.WriteJSON(packets.SheetFrame{
					Type:        "offset",
					Offset:      offset,
					ListOpacity: opacity,
				}); err != nil {
					return
				}

			case "end":
				settle := sess.EndDrag(event.Velocity)
				sessions.Touch(sess)
				if err := conn.WriteJSON(packets.SheetFrame{
					Type:        "settle",
					Offset:      settle.Offset,
					ListOpacity: settle.Opacity,
					Target:      settle.Target.String(),
					Expanded:    settle.Expanded,
				}); err != nil {
					return
				}

			case "frame":
				// live settle-animation value so the next drag starts
				// from wherever the sheet currently is
				sess.SetAnimatedOffset(event.Offset)

			default:
				log.Warn().Str("type", event.Type).Msg("unknown gesture event")
			}
		}
	}
}
