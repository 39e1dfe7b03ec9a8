package events

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestEvents(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Events Suite")
}

var _ = ginkgo.Describe("EventBus", func() {
	var bus *EventBus

	ginkgo.BeforeEach(func() {
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		bus = NewEventBus(slogger)
	})

	ginkgo.It("should deliver an event to every subscriber of its type", func() {
		var delivered []string
		bus.Subscribe(ComplaintCreated, func(ctx context.Context, e Event) error {
			delivered = append(delivered, "first")
			return nil
		})
		bus.Subscribe(ComplaintCreated, func(ctx context.Context, e Event) error {
			delivered = append(delivered, "second")
			return nil
		})

		err := bus.PublishSync(context.Background(), NewComplaintCreatedEvent(1, 42, "roads"))

		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(delivered).To(gomega.Equal([]string{"first", "second"}))
	})

	ginkgo.It("should not deliver to subscribers of other types", func() {
		called := false
		bus.Subscribe(ComplaintDeleted, func(ctx context.Context, e Event) error {
			called = true
			return nil
		})

		err := bus.PublishSync(context.Background(), NewComplaintCreatedEvent(1, 42, "roads"))

		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(called).To(gomega.BeFalse())
	})

	ginkgo.It("should surface handler failures from PublishSync", func() {
		bus.Subscribe(ComplaintAssigned, func(ctx context.Context, e Event) error {
			return errors.New("boom")
		})

		err := bus.PublishSync(context.Background(), NewComplaintAssignedEvent(1, 3))

		gomega.Expect(err).To(gomega.HaveOccurred())
	})

	ginkgo.It("should carry the payload fields on lifecycle events", func() {
		event := NewComplaintAssignedEvent(7, 3)

		gomega.Expect(event.EventType()).To(gomega.Equal(ComplaintAssigned))
		gomega.Expect(event.EventID()).ToNot(gomega.BeEmpty())
		payload, ok := event.Payload().(map[string]interface{})
		gomega.Expect(ok).To(gomega.BeTrue())
		gomega.Expect(payload["complaint_id"]).To(gomega.Equal(int64(7)))
		gomega.Expect(payload["agency_id"]).To(gomega.Equal(int64(3)))
	})
})
