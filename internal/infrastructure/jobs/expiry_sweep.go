package jobs

import (
	"context"
	"log"
	"time"
)

type offerSweeper interface {
	DeactivateExpiredOffers(ctx context.Context, now time.Time) (int64, error)
}

type appointmentSweeper interface {
	ExpirePastPending(ctx context.Context, cutoff time.Time) (int64, error)
}

// ExpirySweepJob periodically deactivates lapsed special offers and expires
// site-visit appointments whose slot has passed without confirmation.
type ExpirySweepJob struct {
	banks        offerSweeper
	appointments appointmentSweeper
	interval     time.Duration
	stop         chan struct{}
}

func NewExpirySweepJob(banks offerSweeper, appointments appointmentSweeper, interval time.Duration) *ExpirySweepJob {
	return &ExpirySweepJob{
		banks:        banks,
		appointments: appointments,
		interval:     interval,
		stop:         make(chan struct{}),
	}
}

func (j *ExpirySweepJob) Start(ctx context.Context) {
	log.Println("🕐 Starting expiry sweep job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Expiry sweep job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Expiry sweep job stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *ExpirySweepJob) Stop() {
	close(j.stop)
}

func (j *ExpirySweepJob) sweep(ctx context.Context) {
	now := time.Now()

	offers, err := j.banks.DeactivateExpiredOffers(ctx, now)
	if err != nil {
		log.Printf("❌ Error deactivating expired special offers: %v", err)
	} else if offers > 0 {
		log.Printf("✅ Deactivated %d expired special offers", offers)
	}

	appointments, err := j.appointments.ExpirePastPending(ctx, now)
	if err != nil {
		log.Printf("❌ Error expiring past appointments: %v", err)
	} else if appointments > 0 {
		log.Printf("✅ Expired %d past pending appointments", appointments)
	}
}
