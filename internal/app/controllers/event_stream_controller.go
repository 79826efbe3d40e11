package controllers

import (
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ritikkamerkar15/residential-security-system/internal/domain/events"
	"github.com/ritikkamerkar15/residential-security-system/internal/domain/services/container"
)

// streamEvent is one server-sent event queued for a connected console
type streamEvent struct {
	Name    string
	Payload interface{}
}

// HandleEventStreamFunc returns the SSE handler consoles connect to for live
// directory updates. Each connection gets its own bus subscriptions, removed
// when the client goes away.
func HandleEventStreamFunc(svcContainer *container.ServiceContainer) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		bus := svcContainer.GetBus()

		// Buffered so a slow console drops events instead of blocking the
		// publisher; bus delivery is synchronous with the mutation.
		queue := make(chan streamEvent, 64)

		var subs []*events.Subscription
		for _, name := range []string{
			events.DataUpdated,
			events.VisitorRequestAdded,
			events.VisitorRequestUpdated,
			events.GuardStatusUpdated,
		} {
			event := name
			subs = append(subs, bus.Subscribe(event, func(payload interface{}) {
				select {
				case queue <- streamEvent{Name: event, Payload: payload}:
				default:
				}
			}))
		}
		defer func() {
			for _, sub := range subs {
				bus.Unsubscribe(sub)
			}
		}()

		ctx.Header("Cache-Control", "no-cache")
		ctx.Header("Connection", "keep-alive")

		clientGone := ctx.Request.Context().Done()
		heartbeat := time.NewTicker(30 * time.Second)
		defer heartbeat.Stop()

		ctx.Stream(func(w io.Writer) bool {
			select {
			case <-clientGone:
				return false
			case event := <-queue:
				if event.Payload == nil {
					ctx.SSEvent(event.Name, gin.H{})
				} else {
					ctx.SSEvent(event.Name, event.Payload)
				}
				return true
			case <-heartbeat.C:
				ctx.SSEvent("heartbeat", time.Now().UnixMilli())
				return true
			}
		})
	}
}
