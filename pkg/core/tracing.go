// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT license.
package core

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/Azure/azure-arm-clients-go"

func startSpan(ctx context.Context, operation string) (context.Context, func(*http.Response, error)) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, operation, trace.WithSpanKind(trace.SpanKindClient))
	return ctx, func(resp *http.Response, err error) {
		if resp != nil {
			span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
}
