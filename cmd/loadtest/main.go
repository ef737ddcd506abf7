package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	promadapter "github.com/codewandler/enummeta/adapters/prometheus"
	"github.com/codewandler/enummeta/core/enumcache"
)

// === Config ===

var (
	logLevel     = slog.LevelInfo
	N            = getEnvInt("N", 200_000)
	workers      = getEnvInt("WORKERS", runtime.NumCPU())
	members      = getEnvInt("MEMBERS", 256)
	reverseEvery = getEnvInt("REVERSE_EVERY", 100)
	methodName   = getEnv("METHOD", enumcache.WholeTypeOnFirstUse.String())
	metricsAddr  = getEnv("METRICS_ADDR", "")
	debug        = getEnvBool("DEBUG", false)
)

func getEnvBool(key string, fallback bool) bool {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	return v == "1" || strings.ToLower(v) == "true"
}

func getEnv(key, fallback string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	return v
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, strconv.Itoa(fallback)))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

// === Domain ===

type Status uint16

func declareStatus(r *enumcache.Registry, n int) {
	decls := make([]enumcache.MemberDecl[Status], 0, n)
	for i := range n {
		decls = append(decls, enumcache.Member(Status(i),
			enumcache.String(fmt.Sprintf("status-%03d", i)),
			enumcache.Integer(i*10),
			enumcache.Bool(i%2 == 0),
			enumcache.KeyValue("class", i/100),
			enumcache.KeyValue("retryable", i%7 == 0),
		))
	}
	enumcache.MustDeclare(r, decls...)
}

func main() {
	if debug {
		logLevel = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))

	method, err := enumcache.ParseCachingMethod(methodName)
	checkErr(err)

	reg := prometheus.NewRegistry()
	if metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		server := &http.Server{Addr: metricsAddr, Handler: mux}
		go func() {
			log.Info("prometheus metrics server starting", slog.String("addr", metricsAddr))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("prometheus server error", slog.Any("error", err))
			}
		}()
		defer server.Close()
	}

	registry := enumcache.NewRegistry()
	declareStatus(registry, members)

	cache, err := enumcache.New(registry, enumcache.Options{
		Method:  method,
		Log:     log,
		Metrics: promadapter.NewCacheMetrics(reg),
	})
	checkErr(err)

	if method == enumcache.Explicit {
		checkErr(enumcache.CacheEnum[Status](cache))
	}

	log.Info("starting load",
		slog.String("method", method.String()),
		slog.Int("workers", workers),
		slog.Int("lookups_per_worker", N),
		slog.Int("members", members),
	)

	var (
		lookups  atomic.Int64
		reverses atomic.Int64
		found    atomic.Int64
		wg       sync.WaitGroup
	)

	startAt := time.Now()
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range N {
				m := Status(rand.IntN(members))
				if _, err := cache.GetStringValue(m); err != nil {
					log.Error("lookup failed", slog.Any("error", err))
					return
				}
				lookups.Add(1)

				if i%reverseEvery != 0 {
					continue
				}
				_, ok, err := enumcache.GetEnumValueByAttributeValue[Status](cache, fmt.Sprintf("status-%03d", m))
				if err != nil {
					log.Error("reverse lookup failed", slog.Any("error", err))
					return
				}
				reverses.Add(1)
				if ok {
					found.Add(1)
				}
			}
		}()
	}
	wg.Wait()
	took := time.Since(startAt)

	// === stats ===
	stats := cache.Stats()
	fmt.Println("==========================================")
	fmt.Printf("   total runtime: %.3f seconds\n", took.Seconds())
	fmt.Printf("         lookups: %d\n", lookups.Load())
	fmt.Printf("    avg. reads/s: %d\n", int(float64(lookups.Load())/took.Seconds()))
	fmt.Printf(" reverse lookups: %d (%d found)\n", reverses.Load(), found.Load())
	fmt.Printf("  cached members: %d (%d whole types)\n", stats.Members, stats.WholeTypes)
	if metricsAddr != "" {
		fmt.Printf("metrics at http://%s/metrics, press Ctrl+C to exit\n", metricsAddr)
		select {}
	}
}

func checkErr(err error) {
	if err != nil {
		panic(err)
	}
}
