package helper

import (
	"log"
	"time"

	"petwell_client/booking"

	"github.com/go-co-op/gocron/v2"
)

var draftScheduler gocron.Scheduler

// ReapAbandonedDrafts dọn các phiên đặt lịch đã đóng hoặc bỏ dở quá 30 phút.
// Bản nháp không bao giờ được lưu dở dang nên bỏ dở là vứt.
func ReapAbandonedDrafts() {
	n := booking.Sessions.ReapIdle(30 * time.Minute)
	if n > 0 {
		log.Printf("🧹 Đã dọn %d phiên đặt lịch bỏ dở", n)
	}
}

func StartDraftJanitor() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("ICT", 7*3600)),
	)
	if err != nil {
		log.Fatal(err)
	}

	draftScheduler = s

	_, err = s.NewJob(
		gocron.DurationJob(10*time.Minute),
		gocron.NewTask(ReapAbandonedDrafts),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("✅ Draft janitor started (10m ICT)")
}

func StopDraftJanitor() {
	if draftScheduler != nil {
		_ = draftScheduler.Shutdown()
	}
}
