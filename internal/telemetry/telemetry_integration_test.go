//go:build telemetryintegration

package telemetry

import (
	"context"
	"os"
	"testing"
)

// TestSink_RealPostgres_Integration runs against a live PostgreSQL instance.
// Run with: TELEMETRY_TEST_DSN=postgres://... go test -tags=telemetryintegration -run TestSink_RealPostgres -v
func TestSink_RealPostgres_Integration(t *testing.T) {
	dsn := os.Getenv("TELEMETRY_TEST_DSN")
	if dsn == "" {
		t.Skip("TELEMETRY_TEST_DSN not set")
	}

	ctx := context.Background()
	sink, err := Connect(ctx, dsn)
	if err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	defer sink.Close()

	if err := sink.InitSchema(ctx); err != nil {
		t.Fatalf("InitSchema() error = %v", err)
	}

	if err := sink.Record(ctx, "Strong", 95); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := sink.Record(ctx, "Strong", 95); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	counts, err := sink.Counts(ctx)
	if err != nil {
		t.Fatalf("Counts() error = %v", err)
	}
	if counts["Strong"][9] < 2 {
		t.Errorf("counts[Strong][9] = %d, want >= 2", counts["Strong"][9])
	}
}
