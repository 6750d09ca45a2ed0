// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/zebrafish-catalog/query"
	"github.com/danielhkuo/zebrafish-catalog/testutil"
)

// TestConcurrentReads verifies that many simultaneous readers over one
// shared connection pool all get complete answers.
func TestConcurrentReads(t *testing.T) {
	st := testutil.SetupTestStore(t)
	c := testutil.SeedCatalog(t, st)
	svc := query.NewService(st)

	mutantHandler := NewMutantHandler(svc)
	measurementHandler := NewMeasurementHandler(svc)
	id := strconv.FormatInt(c.Sox10Mutant, 10)

	requests := []func() *httptest.ResponseRecorder{
		func() *httptest.ResponseRecorder {
			w := httptest.NewRecorder()
			mutantHandler.ListMutants(w, httptest.NewRequest("GET", "/api/mutants", nil))
			return w
		},
		func() *httptest.ResponseRecorder {
			req := httptest.NewRequest("GET", "/api/mutant/"+id, nil)
			req.SetPathValue("id", id)
			w := httptest.NewRecorder()
			mutantHandler.GetMutant(w, req)
			return w
		},
		func() *httptest.ResponseRecorder {
			req := httptest.NewRequest("GET", "/api/behavior-data/"+id, nil)
			req.SetPathValue("mutantId", id)
			w := httptest.NewRecorder()
			measurementHandler.GetBehaviorData(w, req)
			return w
		},
		func() *httptest.ResponseRecorder {
			w := httptest.NewRecorder()
			mutantHandler.Search(w, httptest.NewRequest("GET", "/api/search?gene=sox", nil))
			return w
		},
	}

	numReaders := 40
	var failures atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numReaders; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			w := requests[idx%len(requests)]()
			if w.Code != http.StatusOK {
				failures.Add(1)
				t.Errorf("Reader %d got %d: %s", idx, w.Code, w.Body.String())
			}
		}(i)
	}

	wg.Wait()

	if n := failures.Load(); n != 0 {
		t.Errorf("Expected all %d readers to succeed, %d failed", numReaders, n)
	}
}
