package clients

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/valkey-io/valkey-go"
)

var (
	valkeyInstance *ValkeyClient
	valkeyOnce     sync.Once
)

type ValkeyClient struct {
	Client valkey.Client
	mu     sync.Mutex
}

const (
	// Keys marking worker requests as already annotated. Entries expire;
	// this is request dedupe, not result storage.
	VALKEY_ANNOTATED_PREFIX = "annoflow:annotated:"
	VALKEY_ANNOTATED_TTL    = 24 * time.Hour
)

func InitValkey() *ValkeyClient {
	valkeyOnce.Do(func() {
		valkeyAddr := os.Getenv("VALKEY_INIT_ADDRESS")
		valkeyPassword := os.Getenv("VALKEY_PASSWORD")
		useTLS := os.Getenv("VALKEY_TLS") == "true"

		opts := valkey.ClientOption{
			InitAddress: []string{
				valkeyAddr,
			},
			Password:         valkeyPassword,
			ConnWriteTimeout: 5 * time.Second,
			SelectDB:         0,
		}

		if useTLS {
			opts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
		}

		client, err := valkey.NewClient(opts)
		if err != nil {
			panic(fmt.Errorf("[ValkeyClient] failed to create Valkey: %w", err))
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
		defer cancel()

		c := client.Do(ctx, client.B().Ping().Build())
		if c.Error() != nil {
			panic(fmt.Errorf("[ValkeyClient] failed to ping Valkey: %w", c.Error()))
		}

		slog.Info("[ValkeyClient] Successfully connected to valkey")

		valkeyInstance = &ValkeyClient{Client: client}
	})
	return valkeyInstance
}

func CloseValkey() {
	if valkeyInstance != nil {
		valkeyInstance.Client.Close()
		slog.Info("[ValkeyClient] Valkey connection closed")
	}
}

// WasAnnotated reports whether the worker already handled this request ID.
func (vc *ValkeyClient) WasAnnotated(ctx context.Context, requestID string) bool {
	key := VALKEY_ANNOTATED_PREFIX + requestID

	n, err := vc.Client.Do(ctx, vc.Client.B().Exists().Key(key).Build()).AsInt64()
	if err != nil {
		slog.Warn("[ValkeyClient] Dedupe lookup failed, treating request as new",
			slog.String("request_id", requestID),
			slog.String("error", err.Error()))
		return false
	}
	return n > 0
}

// MarkAnnotated records a handled request ID with a TTL.
func (vc *ValkeyClient) MarkAnnotated(ctx context.Context, requestID string) {
	vc.mu.Lock()
	defer vc.mu.Unlock()

	key := VALKEY_ANNOTATED_PREFIX + requestID
	cmd := vc.Client.B().Set().Key(key).Value("1").
		Ex(VALKEY_ANNOTATED_TTL).Build()
	if err := vc.Client.Do(ctx, cmd).Error(); err != nil {
		slog.Warn("[ValkeyClient] Failed to mark request as annotated",
			slog.String("request_id", requestID),
			slog.String("error", err.Error()))
	}
}
