package grpc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"claritext/internal/annotate"
	"claritext/internal/config"
	"claritext/internal/domain/entity"
	pb "claritext/internal/interface/grpc/pb/annotator"
	"claritext/internal/usecase/entities"
	"claritext/pkg/ratelimit"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sony/gobreaker"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// Prometheus metrics for the annotator client
var (
	// annotatorRequestsTotal tracks the total number of annotator requests.
	annotatorRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "annotator_client_requests_total",
			Help: "Total number of annotator client requests",
		},
		[]string{"method", "status"},
	)

	// annotatorRequestDuration tracks annotator request latency.
	// Buckets reflect model inference times: sub-second for short texts,
	// tens of seconds for long documents on a cold model.
	annotatorRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "annotator_client_request_duration_seconds",
			Help:    "Annotator client request duration in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"method"},
	)

	// annotatorCircuitBreakerState tracks circuit breaker state.
	// 0 = closed, 1 = open, 2 = half-open
	annotatorCircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "annotator_client_circuit_breaker_state",
			Help: "Annotator circuit breaker state (0=closed, 1=open, 2=half-open)",
		},
		[]string{"name"},
	)
)

// Common errors
var (
	// ErrInvalidInput indicates the request failed validation before or at
	// the annotator.
	ErrInvalidInput = errors.New("invalid annotator input")

	// ErrAnnotatorDisabled indicates the external annotator is disabled by
	// configuration.
	ErrAnnotatorDisabled = errors.New("annotator is disabled")
)

// AnnotatorClient talks to the annotation service over gRPC. It implements
// annotate.Annotator and entities.Provider. Unreachable-service conditions
// (connection loss, deadline, open circuit) are reported as
// annotate.ErrUnavailable so callers can degrade to the heuristic path.
type AnnotatorClient struct {
	conn           *grpc.ClientConn
	client         pb.TextAnnotatorClient
	config         *config.AnnotatorConfig
	circuitBreaker *gobreaker.CircuitBreaker
	limiter        *ratelimit.Limiter
	logger         *slog.Logger
}

// NewAnnotatorClient creates a gRPC annotator client and waits for the
// connection to become ready.
func NewAnnotatorClient(cfg *config.AnnotatorConfig) (*AnnotatorClient, error) {
	if cfg == nil {
		return nil, fmt.Errorf("annotator config is required")
	}

	if !cfg.Enabled {
		return nil, ErrAnnotatorDisabled
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectionTimeout)
	defer cancel()

	conn, err := grpc.NewClient(
		cfg.GRPCAddress,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC connection: %w", err)
	}

	// Initiate connection (non-blocking)
	conn.Connect()

	if !waitForConnection(ctx, conn) {
		if closeErr := conn.Close(); closeErr != nil {
			slog.Error("failed to close gRPC connection", slog.Any("error", closeErr))
		}
		return nil, fmt.Errorf("annotator connection timeout: %w", annotate.ErrUnavailable)
	}

	cbSettings := gobreaker.Settings{
		Name:        "annotator",
		MaxRequests: cfg.CircuitBreaker.MaxRequests,
		Interval:    cfg.CircuitBreaker.Interval,
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.CircuitBreaker.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= cfg.CircuitBreaker.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			slog.Info("circuit breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
			updateCircuitBreakerMetric(name, to)
		},
	}

	return &AnnotatorClient{
		conn:           conn,
		client:         pb.NewTextAnnotatorClient(conn),
		config:         cfg,
		circuitBreaker: gobreaker.NewCircuitBreaker(cbSettings),
		limiter:        ratelimit.New(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst),
		logger:         slog.Default(),
	}, nil
}

// Mode reports the annotation path this client provides.
func (c *AnnotatorClient) Mode() annotate.Mode {
	return annotate.ModeFull
}

// Annotate segments text into an annotated document.
func (c *AnnotatorClient) Annotate(ctx context.Context, text string) (*entity.Document, error) {
	if err := c.validateInput(text); err != nil {
		return nil, err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", annotate.ErrUnavailable, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeouts.Annotate)
	defer cancel()

	start := time.Now()
	defer func() {
		annotatorRequestDuration.WithLabelValues("Annotate").Observe(time.Since(start).Seconds())
	}()

	result, err := c.circuitBreaker.Execute(func() (any, error) {
		pbResp, err := c.client.Annotate(ctx, &pb.AnnotateRequest{
			Text:     text,
			Language: "es",
		})
		if err != nil {
			return nil, c.mapGRPCError(err)
		}
		return buildDocument(pbResp), nil
	})

	st := "success"
	if err != nil {
		st = "error"
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			annotatorRequestsTotal.WithLabelValues("Annotate", "circuit_breaker_open").Inc()
			return nil, fmt.Errorf("%w: circuit breaker open", annotate.ErrUnavailable)
		}
	}
	annotatorRequestsTotal.WithLabelValues("Annotate", st).Inc()

	if err != nil {
		return nil, err
	}

	doc := result.(*entity.Document)
	if err := doc.Validate(); err != nil {
		// A malformed document is a server bug, not an availability issue.
		return nil, fmt.Errorf("annotator response: %w", err)
	}

	return doc, nil
}

// ExtractEntities returns named entities recognized in text.
func (c *AnnotatorClient) ExtractEntities(ctx context.Context, text string) ([]entities.Entity, error) {
	if err := c.validateInput(text); err != nil {
		return nil, err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", annotate.ErrUnavailable, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeouts.ExtractEntities)
	defer cancel()

	start := time.Now()
	defer func() {
		annotatorRequestDuration.WithLabelValues("ExtractEntities").Observe(time.Since(start).Seconds())
	}()

	result, err := c.circuitBreaker.Execute(func() (any, error) {
		pbResp, err := c.client.ExtractEntities(ctx, &pb.ExtractEntitiesRequest{
			Text:     text,
			Language: "es",
		})
		if err != nil {
			return nil, c.mapGRPCError(err)
		}

		ents := make([]entities.Entity, 0, len(pbResp.Entities))
		for _, pbEnt := range pbResp.Entities {
			ents = append(ents, entities.Entity{
				Text:  pbEnt.Text,
				Label: pbEnt.Label,
			})
		}
		return ents, nil
	})

	st := "success"
	if err != nil {
		st = "error"
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			annotatorRequestsTotal.WithLabelValues("ExtractEntities", "circuit_breaker_open").Inc()
			return nil, fmt.Errorf("%w: circuit breaker open", annotate.ErrUnavailable)
		}
	}
	annotatorRequestsTotal.WithLabelValues("ExtractEntities", st).Inc()

	if err != nil {
		return nil, err
	}

	return result.([]entities.Entity), nil
}

// HealthStatus describes annotator reachability.
type HealthStatus struct {
	Healthy     bool
	Latency     time.Duration
	Message     string
	CircuitOpen bool
}

// Health returns the health status of the annotator.
func (c *AnnotatorClient) Health(ctx context.Context) (*HealthStatus, error) {
	start := time.Now()

	cbState := c.circuitBreaker.State()
	if cbState == gobreaker.StateOpen {
		return &HealthStatus{
			Healthy:     false,
			Message:     "circuit breaker is open",
			CircuitOpen: true,
		}, nil
	}

	state := c.conn.GetState()
	healthy := state == connectivity.Ready

	return &HealthStatus{
		Healthy: healthy,
		Latency: time.Since(start),
		Message: fmt.Sprintf("connection state: %s", state),
	}, nil
}

// Close releases resources held by the client.
func (c *AnnotatorClient) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

func (c *AnnotatorClient) validateInput(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: text cannot be empty", ErrInvalidInput)
	}
	if len(text) > c.config.Limits.MaxInputChars {
		return fmt.Errorf("%w: text exceeds maximum length of %d characters",
			ErrInvalidInput, c.config.Limits.MaxInputChars)
	}
	return nil
}

// buildDocument converts the wire response into the domain document,
// assigning zero-based sentence and token indices in reading order.
func buildDocument(resp *pb.AnnotateResponse) *entity.Document {
	sentences := make([]entity.Sentence, 0, len(resp.Sentences))
	tokenIndex := 0
	for si, pbSent := range resp.Sentences {
		tokens := make([]entity.Token, 0, len(pbSent.Tokens))
		for _, pbTok := range pbSent.Tokens {
			tokens = append(tokens, entity.Token{
				Text:  pbTok.Text,
				Lemma: pbTok.Lemma,
				POS:   entity.NormalizePOS(pbTok.Pos),
				Index: tokenIndex,
			})
			tokenIndex++
		}
		sentences = append(sentences, entity.Sentence{
			Text:   pbSent.Text,
			Tokens: tokens,
			Index:  si,
		})
	}
	return &entity.Document{Sentences: sentences}
}

// mapGRPCError maps gRPC errors to domain errors.
func (c *AnnotatorClient) mapGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("%w: %v", annotate.ErrUnavailable, err)
	}

	switch st.Code() {
	case codes.DeadlineExceeded:
		return fmt.Errorf("%w: deadline exceeded", annotate.ErrUnavailable)
	case codes.Unavailable:
		return fmt.Errorf("%w: %s", annotate.ErrUnavailable, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidInput, st.Message())
	default:
		return fmt.Errorf("annotator error: %s", st.Message())
	}
}

// waitForConnection waits for the gRPC connection to be ready.
func waitForConnection(ctx context.Context, conn *grpc.ClientConn) bool {
	for {
		state := conn.GetState()
		if state == connectivity.Ready {
			return true
		}
		if !conn.WaitForStateChange(ctx, state) {
			return false
		}
	}
}

// updateCircuitBreakerMetric updates the circuit breaker state metric.
func updateCircuitBreakerMetric(name string, state gobreaker.State) {
	var value float64
	switch state {
	case gobreaker.StateClosed:
		value = 0
	case gobreaker.StateOpen:
		value = 1
	case gobreaker.StateHalfOpen:
		value = 2
	}
	annotatorCircuitBreakerState.WithLabelValues(name).Set(value)
}
