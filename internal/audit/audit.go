// Package audit checks a list of passwords against the breach index on a
// bounded worker pool. Only digest prefixes leave the process, and only
// digests are written to the findings file, never the plaintext list.
package audit

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/thinhdanggroup/executor"
	"golang.org/x/net/context"

	"breachlook/internal/util"
	"breachlook/pkg/hibp"
)

type Auditor struct {
	parallelism int
	rateLimit   int
	hashed      bool
	lookuper    *hibp.Lookuper
	stat        *status
	wm          sync.Mutex
	fileName    string
	writer      *bufio.Writer
}

func NewAuditor(lookuper *hibp.Lookuper, out *os.File, parallelism int, rateLimit int, hashed bool) *Auditor {
	return &Auditor{
		parallelism: parallelism,
		rateLimit:   rateLimit,
		hashed:      hashed,
		lookuper:    lookuper,
		writer:      bufio.NewWriter(out),
		fileName:    out.Name(),
	}
}

// ProcessList reads newline-delimited entries (plaintext passwords, or SHA1
// hex digests when the auditor is in hashed mode) and checks each one.
// Exposed entries land in the findings file as DIGEST:COUNT lines.
func (a *Auditor) ProcessList(in io.Reader) error {
	s := util.Stats()
	defer s()

	var threads int
	if a.parallelism > 0 {
		threads = a.parallelism
	} else {
		threads = runtime.NumCPU()
	}

	// This is a bounded thread pool. I just didn't want to implement it myself...
	checkTasks, err := executor.New(executor.Config{
		ReqPerSeconds: a.rateLimit,
		QueueSize:     2 * threads,
		NumWorkers:    threads,
	})
	if err != nil {
		return err
	}
	defer checkTasks.Close()

	log.Info().Msgf("auditing password list with %d threads, findings in file %s, ^C to stop the process", threads, a.fileName)
	a.stat = newStatus()
	a.stat.BeginProgress()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		entry := strings.TrimSpace(scanner.Text())
		if entry == "" {
			continue
		}

		if err = checkTasks.Publish(a.checkEntry, entry); err != nil {
			log.Panic().Err(err).Msgf("there is a programming error here.")
		}
	}

	if err = scanner.Err(); err != nil {
		return fmt.Errorf("error reading password list: %w", err)
	}

	checkTasks.Wait()
	a.stat.Done()

	return a.flush()
}

func (a *Auditor) checkEntry(entry string) {
	digest := entry
	if a.hashed {
		digest = strings.ToUpper(digest)
	} else {
		digest = hibp.Digest(entry)
	}

	result, err := a.lookuper.LookupDigest(context.Background(), digest)
	if err != nil {
		log.Error().Err(err).Msgf("error checking digest %s", digest)
		return
	}

	a.stat.EntryChecked()
	if !result.Pwned() {
		return
	}

	a.stat.EntryExposed(result.Occurrences)
	if err = a.writeFinding(digest, result); err != nil {
		log.Fatal().Err(err).Msgf("error during findings write for digest %s. Stopping process", digest)
	}
}

func (a *Auditor) writeFinding(digest string, result hibp.BreachResult) error {
	// Synchronize file writes, we don't want intersected or incomplete lines.
	a.wm.Lock()
	defer a.wm.Unlock()

	_, err := a.writer.WriteString(fmt.Sprintf("%s:%d\n", digest, result.Occurrences))
	return err
}

func (a *Auditor) flush() error {
	a.wm.Lock()
	defer a.wm.Unlock()
	return a.writer.Flush()
}
