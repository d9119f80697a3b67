// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package std carries the small ambient utilities (stats logging) that
// don't belong to any one codec component.
package std

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/n0ham/gofx25/internal/pipeline"
)

// WriteBlockStats appends one CSV row recording a completed decode run's
// block counts to path, creating the file and a header row if it doesn't
// already exist. A decode run is a single synchronous pass, so this writes
// one row at completion rather than on a polling interval.
func WriteBlockStats(path string, stats pipeline.Stats) error {
	if path == "" {
		return nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "std: create stats directory")
		}
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return errors.Wrap(err, "std: open stats file")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if stat, err := f.Stat(); err == nil && stat.Size() == 0 {
		if err := w.Write([]string{"Unix", "Processed", "Corrected", "Failed"}); err != nil {
			return errors.Wrap(err, "std: write stats header")
		}
	}
	if err := w.Write([]string{
		fmt.Sprint(time.Now().Unix()),
		fmt.Sprint(stats.Processed),
		fmt.Sprint(stats.Corrected),
		fmt.Sprint(stats.Failed),
	}); err != nil {
		return errors.Wrap(err, "std: write stats row")
	}
	w.Flush()
	return w.Error()
}
