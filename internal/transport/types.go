// Package transport exposes the cached network status over HTTP and gRPC health.
package transport

import (
	"github.com/ashelwen77/zksync/internal/model"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	StatusReader interface {
		Read() model.NetworkStatus
	}
	// HealthSetter is implemented by *health.Server.
	HealthSetter interface {
		SetServingStatus(service string, servingStatus healthpb.HealthCheckResponse_ServingStatus)
	}
)
