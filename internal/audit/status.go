package audit

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type status struct {
	entriesChecked   uint64
	entriesExposed   uint64
	occurrencesTotal uint64
	start            time.Time
	ticker           *time.Ticker
	progress         chan bool
}

func newStatus() *status {
	return &status{
		start:    time.Now(),
		ticker:   time.NewTicker(10 * time.Second),
		progress: make(chan bool),
	}
}

// BeginProgress reports the progress of the audit every 10 seconds.
func (s *status) BeginProgress() {
	go func() {
		for {
			select {
			case <-s.progress:
				return
			case <-s.ticker.C:
				log.Info().Msgf("%d passwords checked, %d exposed. %.0f checks/s",
					atomic.LoadUint64(&s.entriesChecked), atomic.LoadUint64(&s.entriesExposed), s.checksPerSecond())
			}
		}
	}()
}

func (s *status) EntryChecked() {
	atomic.AddUint64(&s.entriesChecked, 1)
}

func (s *status) EntryExposed(occurrences uint64) {
	atomic.AddUint64(&s.entriesExposed, 1)
	atomic.AddUint64(&s.occurrencesTotal, occurrences)
}

func (s *status) checksPerSecond() float64 {
	elapsed := time.Since(s.start)
	var checksPerSec float64
	if elapsed.Nanoseconds() > 0 {
		checksPerSec = float64(s.entriesChecked) / elapsed.Seconds()
	} else {
		checksPerSec = float64(s.entriesChecked)
	}

	return checksPerSec
}

func (s *status) Done() {
	s.progress <- true

	p := message.NewPrinter(language.English)
	log.Info().Msgf("finished auditing %s passwords in %v. %.0f checks/s",
		p.Sprintf("%d", s.entriesChecked), time.Since(s.start), s.checksPerSecond())
	log.Info().Msgf("%s passwords exposed, %s total breach occurrences",
		p.Sprintf("%d", s.entriesExposed), p.Sprintf("%d", s.occurrencesTotal))
}
