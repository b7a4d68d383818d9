package grpc

import (
	"context"
	"errors"
	"net"
	"strings"
	"testing"
	"time"

	"claritext/internal/annotate"
	"claritext/internal/config"
	"claritext/internal/domain/entity"
	pb "claritext/internal/interface/grpc/pb/annotator"
	"claritext/pkg/ratelimit"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

const bufSize = 1024 * 1024

// mockTextAnnotatorServer implements TextAnnotatorServer for testing.
type mockTextAnnotatorServer struct {
	pb.UnimplementedTextAnnotatorServer

	annotateFn func(ctx context.Context, req *pb.AnnotateRequest) (*pb.AnnotateResponse, error)
	entitiesFn func(ctx context.Context, req *pb.ExtractEntitiesRequest) (*pb.ExtractEntitiesResponse, error)
}

func (m *mockTextAnnotatorServer) Annotate(ctx context.Context, req *pb.AnnotateRequest) (*pb.AnnotateResponse, error) {
	if m.annotateFn != nil {
		return m.annotateFn(ctx, req)
	}
	return &pb.AnnotateResponse{
		Sentences: []*pb.Sentence{
			{
				Text: "El gato duerme.",
				Tokens: []*pb.Token{
					{Text: "El", Lemma: "el", Pos: "DET"},
					{Text: "gato", Lemma: "gato", Pos: "NOUN"},
					{Text: "duerme", Lemma: "dormir", Pos: "VERB"},
					{Text: ".", Lemma: ".", Pos: "PUNCT"},
				},
			},
		},
	}, nil
}

func (m *mockTextAnnotatorServer) ExtractEntities(ctx context.Context, req *pb.ExtractEntitiesRequest) (*pb.ExtractEntitiesResponse, error) {
	if m.entitiesFn != nil {
		return m.entitiesFn(ctx, req)
	}
	return &pb.ExtractEntitiesResponse{
		Entities: []*pb.Entity{
			{Text: "Madrid", Label: "LOC"},
			{Text: "María", Label: "PER"},
		},
	}, nil
}

// setupTestServer creates a bufconn-based gRPC server for testing.
func setupTestServer(t *testing.T, server *mockTextAnnotatorServer) (*grpc.ClientConn, func()) {
	lis := bufconn.Listen(bufSize)
	s := grpc.NewServer()
	pb.RegisterTextAnnotatorServer(s, server)

	go func() {
		if err := s.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			t.Logf("Server error: %v", err)
		}
	}()

	dialer := func(context.Context, string) (net.Conn, error) {
		return lis.Dial()
	}

	conn, err := grpc.NewClient(
		"passthrough://bufnet",
		grpc.WithContextDialer(dialer),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	cleanup := func() {
		_ = conn.Close()
		s.Stop()
		_ = lis.Close()
	}

	return conn, cleanup
}

func validTestConfig() *config.AnnotatorConfig {
	cfg, err := config.LoadAnnotatorConfig()
	if err != nil {
		panic(err)
	}
	return cfg
}

// createTestClient creates an AnnotatorClient backed by a mock server.
func createTestClient(t *testing.T, server *mockTextAnnotatorServer) (*AnnotatorClient, func()) {
	conn, cleanup := setupTestServer(t, server)
	cfg := validTestConfig()

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "annotator-test",
		MaxRequests: cfg.CircuitBreaker.MaxRequests,
		Interval:    cfg.CircuitBreaker.Interval,
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})

	client := &AnnotatorClient{
		conn:           conn,
		client:         pb.NewTextAnnotatorClient(conn),
		config:         cfg,
		circuitBreaker: cb,
		limiter:        ratelimit.New(0, 0),
	}

	return client, cleanup
}

func TestAnnotate_BuildsDocument(t *testing.T) {
	client, cleanup := createTestClient(t, &mockTextAnnotatorServer{})
	defer cleanup()

	doc, err := client.Annotate(context.Background(), "El gato duerme.")
	require.NoError(t, err)
	require.Len(t, doc.Sentences, 1)

	sent := doc.Sentences[0]
	assert.Equal(t, "El gato duerme.", sent.Text)
	require.Len(t, sent.Tokens, 4)

	assert.Equal(t, entity.POSDeterminer, sent.Tokens[0].POS)
	assert.Equal(t, entity.POSNoun, sent.Tokens[1].POS)
	assert.Equal(t, entity.POSVerb, sent.Tokens[2].POS)
	assert.Equal(t, entity.POSOther, sent.Tokens[3].POS, "unknown tags collapse to OTHER")

	assert.Equal(t, "dormir", sent.Tokens[2].Lemma)
	for i, tok := range sent.Tokens {
		assert.Equal(t, i, tok.Index)
	}
}

func TestAnnotate_TokenIndicesSpanSentences(t *testing.T) {
	server := &mockTextAnnotatorServer{
		annotateFn: func(_ context.Context, _ *pb.AnnotateRequest) (*pb.AnnotateResponse, error) {
			return &pb.AnnotateResponse{
				Sentences: []*pb.Sentence{
					{Text: "Hola.", Tokens: []*pb.Token{{Text: "Hola", Lemma: "hola", Pos: "INTJ"}}},
					{Text: "Adiós.", Tokens: []*pb.Token{{Text: "Adiós", Lemma: "adiós", Pos: "INTJ"}}},
				},
			}, nil
		},
	}
	client, cleanup := createTestClient(t, server)
	defer cleanup()

	doc, err := client.Annotate(context.Background(), "Hola. Adiós.")
	require.NoError(t, err)
	require.Len(t, doc.Sentences, 2)

	assert.Equal(t, 0, doc.Sentences[0].Index)
	assert.Equal(t, 1, doc.Sentences[1].Index)
	assert.Equal(t, 0, doc.Sentences[0].Tokens[0].Index)
	assert.Equal(t, 1, doc.Sentences[1].Tokens[0].Index, "token indices continue across sentences")
}

func TestAnnotate_EmptyInput(t *testing.T) {
	client, cleanup := createTestClient(t, &mockTextAnnotatorServer{})
	defer cleanup()

	_, err := client.Annotate(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAnnotate_InputTooLong(t *testing.T) {
	client, cleanup := createTestClient(t, &mockTextAnnotatorServer{})
	defer cleanup()
	client.config.Limits.MaxInputChars = 10

	_, err := client.Annotate(context.Background(), strings.Repeat("a", 11))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAnnotate_UnavailableMapsToDegradableError(t *testing.T) {
	server := &mockTextAnnotatorServer{
		annotateFn: func(_ context.Context, _ *pb.AnnotateRequest) (*pb.AnnotateResponse, error) {
			return nil, status.Error(codes.Unavailable, "model not loaded")
		},
	}
	client, cleanup := createTestClient(t, server)
	defer cleanup()

	_, err := client.Annotate(context.Background(), "texto")
	assert.ErrorIs(t, err, annotate.ErrUnavailable)
}

func TestAnnotate_InvalidArgument(t *testing.T) {
	server := &mockTextAnnotatorServer{
		annotateFn: func(_ context.Context, _ *pb.AnnotateRequest) (*pb.AnnotateResponse, error) {
			return nil, status.Error(codes.InvalidArgument, "unsupported language")
		},
	}
	client, cleanup := createTestClient(t, server)
	defer cleanup()

	_, err := client.Annotate(context.Background(), "texto")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.NotErrorIs(t, err, annotate.ErrUnavailable)
}

func TestAnnotate_MalformedResponse(t *testing.T) {
	server := &mockTextAnnotatorServer{
		annotateFn: func(_ context.Context, _ *pb.AnnotateRequest) (*pb.AnnotateResponse, error) {
			// A sentence with no tokens violates the annotation contract.
			return &pb.AnnotateResponse{
				Sentences: []*pb.Sentence{{Text: "Hola.", Tokens: nil}},
			}, nil
		},
	}
	client, cleanup := createTestClient(t, server)
	defer cleanup()

	_, err := client.Annotate(context.Background(), "Hola.")
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrMalformedAnnotation)
	assert.NotErrorIs(t, err, annotate.ErrUnavailable, "contract violations must not trigger fallback")
}

func TestAnnotate_CircuitBreakerOpens(t *testing.T) {
	server := &mockTextAnnotatorServer{
		annotateFn: func(_ context.Context, _ *pb.AnnotateRequest) (*pb.AnnotateResponse, error) {
			return nil, status.Error(codes.Unavailable, "down")
		},
	}
	client, cleanup := createTestClient(t, server)
	defer cleanup()

	// Trip the breaker (3 consecutive failures in the test settings).
	for i := 0; i < 3; i++ {
		_, err := client.Annotate(context.Background(), "texto")
		require.Error(t, err)
	}

	_, err := client.Annotate(context.Background(), "texto")
	assert.ErrorIs(t, err, annotate.ErrUnavailable)
	assert.Equal(t, gobreaker.StateOpen, client.circuitBreaker.State())
}

func TestExtractEntities(t *testing.T) {
	client, cleanup := createTestClient(t, &mockTextAnnotatorServer{})
	defer cleanup()

	ents, err := client.ExtractEntities(context.Background(), "María vive en Madrid")
	require.NoError(t, err)
	require.Len(t, ents, 2)
	assert.Equal(t, "Madrid", ents[0].Text)
	assert.Equal(t, "LOC", ents[0].Label)
	assert.Equal(t, "PER", ents[1].Label)
}

func TestExtractEntities_Unavailable(t *testing.T) {
	server := &mockTextAnnotatorServer{
		entitiesFn: func(_ context.Context, _ *pb.ExtractEntitiesRequest) (*pb.ExtractEntitiesResponse, error) {
			return nil, status.Error(codes.Unavailable, "down")
		},
	}
	client, cleanup := createTestClient(t, server)
	defer cleanup()

	_, err := client.ExtractEntities(context.Background(), "texto")
	assert.ErrorIs(t, err, annotate.ErrUnavailable)
}

func TestMode(t *testing.T) {
	client, cleanup := createTestClient(t, &mockTextAnnotatorServer{})
	defer cleanup()

	assert.Equal(t, annotate.ModeFull, client.Mode())
}

func TestHealth_CircuitOpen(t *testing.T) {
	server := &mockTextAnnotatorServer{
		annotateFn: func(_ context.Context, _ *pb.AnnotateRequest) (*pb.AnnotateResponse, error) {
			return nil, status.Error(codes.Unavailable, "down")
		},
	}
	client, cleanup := createTestClient(t, server)
	defer cleanup()

	for i := 0; i < 3; i++ {
		_, _ = client.Annotate(context.Background(), "texto")
	}

	health, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.False(t, health.Healthy)
	assert.True(t, health.CircuitOpen)
}

func TestNewAnnotatorClient_Disabled(t *testing.T) {
	cfg := validTestConfig()
	cfg.Enabled = false

	_, err := NewAnnotatorClient(cfg)
	assert.ErrorIs(t, err, ErrAnnotatorDisabled)
}

func TestNewAnnotatorClient_NilConfig(t *testing.T) {
	_, err := NewAnnotatorClient(nil)
	require.Error(t, err)
}

func TestNewAnnotatorClient_ConnectionTimeout(t *testing.T) {
	cfg := validTestConfig()
	cfg.GRPCAddress = "localhost:1" // nothing listens here
	cfg.ConnectionTimeout = 100 * time.Millisecond

	_, err := NewAnnotatorClient(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, annotate.ErrUnavailable)
}
