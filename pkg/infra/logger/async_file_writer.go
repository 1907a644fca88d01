package logger

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	asyncQueueSize     = 1000
	asyncFlushInterval = 2 * time.Second
)

// AsyncFileWriter buffers log lines and flushes them from a background
// goroutine. Lines are dropped when the queue is full.
type AsyncFileWriter struct {
	writer  *bufio.Writer
	file    *os.File
	lines   chan []byte
	done    chan struct{}
	stopped sync.WaitGroup
	once    sync.Once
}

func NewAsyncFileWriter(logFile string, bufferSize int) (*AsyncFileWriter, error) {
	file, err := os.OpenFile(filepath.Clean(logFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	aw := &AsyncFileWriter{
		writer: bufio.NewWriterSize(file, bufferSize),
		file:   file,
		lines:  make(chan []byte, asyncQueueSize),
		done:   make(chan struct{}),
	}
	aw.stopped.Add(1)
	go aw.run()

	return aw, nil
}

func (aw *AsyncFileWriter) Write(p []byte) (int, error) {
	select {
	case aw.lines <- append([]byte(nil), p...):
	default:
	}
	return len(p), nil
}

func (aw *AsyncFileWriter) run() {
	defer aw.stopped.Done()

	ticker := time.NewTicker(asyncFlushInterval)
	defer ticker.Stop()

	for {
		select {
		case line := <-aw.lines:
			if _, err := aw.writer.Write(line); err != nil {
				fmt.Fprintln(os.Stderr, "error writing log data to file:", err)
			}
		case <-ticker.C:
			_ = aw.writer.Flush()
		case <-aw.done:
			for {
				select {
				case line := <-aw.lines:
					_, _ = aw.writer.Write(line)
				default:
					_ = aw.writer.Flush()
					return
				}
			}
		}
	}
}

// Close drains pending lines and closes the file. Safe to call twice.
func (aw *AsyncFileWriter) Close() error {
	var err error
	aw.once.Do(func() {
		close(aw.done)
		aw.stopped.Wait()
		err = aw.file.Close()
	})
	return err
}
