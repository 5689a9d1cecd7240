package event

import (
	"testing"
	"time"
)

func TestPublishReachesSubscriber(t *testing.T) {
	b := NewBus()
	ch, cancel := b.Subscribe(KindFavorites)
	defer cancel()

	b.Publish(KindFavorites)
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("no signal received")
	}
}

func TestPublishScopedToKind(t *testing.T) {
	b := NewBus()
	fav, cancelFav := b.Subscribe(KindFavorites)
	defer cancelFav()
	rev, cancelRev := b.Subscribe(KindReviews)
	defer cancelRev()

	b.Publish(KindReviews)
	select {
	case <-fav:
		t.Fatal("favorites subscriber got a reviews signal")
	default:
	}
	select {
	case <-rev:
	case <-time.After(time.Second):
		t.Fatal("reviews subscriber missed its signal")
	}
}

func TestPublishCoalescesWhenPending(t *testing.T) {
	b := NewBus()
	ch, cancel := b.Subscribe(KindLikes)
	defer cancel()

	b.Publish(KindLikes)
	b.Publish(KindLikes)
	b.Publish(KindLikes)

	<-ch
	select {
	case <-ch:
		t.Fatal("signals were queued instead of coalesced")
	default:
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	b := NewBus()
	ch, cancel := b.Subscribe(KindComments)
	cancel()

	b.Publish(KindComments)
	select {
	case <-ch:
		t.Fatal("cancelled subscriber still received a signal")
	default:
	}
}
