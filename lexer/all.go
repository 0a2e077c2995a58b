// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lexer

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/bufbuild/sin/report"
	"github.com/bufbuild/sin/source"
)

// LexAll lexes many texts concurrently, sharing sess between them.
//
// The results are in the same order as texts. As with [Lex], results are
// returned even if some texts fail to lex; the error is then a
// [*report.Report] holding every diagnostic, in the order of texts. If ctx
// expires, texts that were not yet lexed have nil results, and the error is
// ctx's.
func LexAll(ctx context.Context, sess *source.Session, texts []string, opts Options) ([]*Result, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("lexer: creating worker pool: %w", err)
	}
	defer pool.Release()

	var (
		wg      sync.WaitGroup
		results = make([]*Result, len(texts))
		errs    = make([]error, len(texts))
	)
	for i, text := range texts {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			results[i], errs[i] = Lex(sess, text, opts)
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return results, fmt.Errorf("lexer: submitting text %d: %w", i, err)
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return results, err
	}

	all := new(report.Report)
	for i, err := range errs {
		all.Merge(report.FromError(sess.FromSource(texts[i]), err))
	}
	sess.Logger().WithField("component", "lexer").
		Debugf("lexed %d texts with %d workers", len(texts), workers)
	return results, all.Err()
}
