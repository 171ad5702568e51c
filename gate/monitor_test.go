package gate

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func verifiedGate(t *testing.T, platform *fakePlatform, messenger *fakeMessenger) *Gate {
	t.Helper()
	platform.set(channelOne, userID, "member")
	platform.set(channelTwo, userID, "member")

	g := newTestGate(platform, messenger)
	if err := g.Start(StartRequest{UserID: userID, ChatID: userID}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if !g.Verified().Contains(userID) {
		t.Fatal("user should be verified")
	}
	messenger.sent = nil
	return g
}

func TestSweepRevokesDriftedUser(t *testing.T) {
	platform := newFakePlatform()
	messenger := &fakeMessenger{}
	g := verifiedGate(t, platform, messenger)
	monitor := NewMonitor(g, time.Hour)

	platform.set(channelOne, userID, "left")

	if revoked := monitor.Sweep(context.Background()); revoked != 1 {
		t.Fatalf("Sweep() revoked %d users, want 1", revoked)
	}
	if g.Verified().Contains(userID) {
		t.Error("user should have lost access")
	}
	if len(messenger.sent) != 1 {
		t.Fatalf("sent %d notices, want 1", len(messenger.sent))
	}
	notice := messenger.sent[0]
	if notice.chatID != userID || !strings.Contains(notice.text, "You left a required channel") {
		t.Errorf("unexpected notice %+v", notice)
	}
	if got := buttonCount(notice.markup); got != 2 {
		t.Errorf("keyboard has %d buttons, want 2", got)
	}

	// Already revoked users are not checked again
	if revoked := monitor.Sweep(context.Background()); revoked != 0 {
		t.Errorf("second Sweep() revoked %d users, want 0", revoked)
	}
	if len(messenger.sent) != 1 {
		t.Errorf("sent %d notices, want 1", len(messenger.sent))
	}
}

func TestSweepKeepsCompliantUser(t *testing.T) {
	platform := newFakePlatform()
	messenger := &fakeMessenger{}
	g := verifiedGate(t, platform, messenger)

	if revoked := NewMonitor(g, time.Hour).Sweep(context.Background()); revoked != 0 {
		t.Fatalf("Sweep() revoked %d users, want 0", revoked)
	}
	if !g.Verified().Contains(userID) {
		t.Error("user should still be verified")
	}
	if len(messenger.sent) != 0 {
		t.Errorf("sent %d messages, want none", len(messenger.sent))
	}
}

func TestSweepRemovesEvenIfNoticeFails(t *testing.T) {
	platform := newFakePlatform()
	messenger := &fakeMessenger{}
	g := verifiedGate(t, platform, messenger)
	g.Verified().Add(userID + 1)

	platform.fail(channelTwo)
	messenger.sendErr = errors.New("Forbidden: bot was blocked by the user")

	if revoked := NewMonitor(g, time.Hour).Sweep(context.Background()); revoked != 2 {
		t.Fatalf("Sweep() revoked %d users, want 2", revoked)
	}
	if g.Verified().Len() != 0 {
		t.Errorf("verified set still has %v", g.Verified().Snapshot())
	}
}

func TestSweepStopsOnCancelledContext(t *testing.T) {
	platform := newFakePlatform()
	messenger := &fakeMessenger{}
	g := verifiedGate(t, platform, messenger)
	platform.set(channelOne, userID, "left")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if revoked := NewMonitor(g, time.Hour).Sweep(ctx); revoked != 0 {
		t.Errorf("Sweep() revoked %d users, want 0", revoked)
	}
	if !g.Verified().Contains(userID) {
		t.Error("cancelled sweep must not touch users")
	}
}

func TestMonitorRunRevokesAndStops(t *testing.T) {
	platform := newFakePlatform()
	messenger := &fakeMessenger{}
	g := verifiedGate(t, platform, messenger)
	platform.set(channelTwo, userID, "kicked")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		NewMonitor(g, 5*time.Millisecond).Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for g.Verified().Contains(userID) {
		select {
		case <-deadline:
			cancel()
			t.Fatal("monitor did not revoke the user in time")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("monitor did not stop after cancel")
	}
}
