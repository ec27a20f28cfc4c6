package services

import (
	"context"

	"github.com/Penny-Liu/parttime/pkg/core/model"
)

// RemoteStore defines the backend operations the services need. Implemented
// by gasclient.Client.
type RemoteStore interface {
	FetchSnapshot(ctx context.Context) (*model.AppData, error)
	SendAction(ctx context.Context, action string, payload any) error
}
