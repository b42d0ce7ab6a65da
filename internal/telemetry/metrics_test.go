package telemetry

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

func TestWithHttpMetricAttributes(t *testing.T) {
	req, _ := http.NewRequest(http.MethodPost, "/products/42/stock", nil)
	req.Pattern = "POST /products/{id}/stock"

	attrs := WithHttpMetricAttributes(req)
	assert.Equal(t, []attribute.KeyValue{semconv.HTTPRoute("POST /products/{id}/stock")}, attrs)
}
