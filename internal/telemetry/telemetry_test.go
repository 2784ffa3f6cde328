package telemetry

import (
	"context"
	"os"
	"testing"
)

func TestConfigureHoneycomb(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if ConfigureHoneycomb("", "") {
		t.Fatal("no API key and no endpoint should leave telemetry disabled")
	}

	if !ConfigureHoneycomb("secret", "") {
		t.Fatal("API key should enable telemetry")
	}
	if got := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); got != honeycombEndpoint {
		t.Errorf("endpoint = %q, want %q", got, honeycombEndpoint)
	}
	want := "x-honeycomb-team=secret,x-honeycomb-dataset=cavegen"
	if got := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); got != want {
		t.Errorf("headers = %q, want %q", got, want)
	}
}

func TestConfigureHoneycombKeepsExistingEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if !ConfigureHoneycomb("", "") {
		t.Fatal("an explicit endpoint should enable telemetry")
	}
	if got := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); got != "http://localhost:4318" {
		t.Errorf("endpoint overwritten: %q", got)
	}
}

func TestNoopTracer(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "test")
	defer span.End()
	if span.SpanContext().IsValid() {
		t.Error("noop tracer should produce invalid span contexts")
	}
}
