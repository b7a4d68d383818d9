// Command cli provides the interactive text utilities menu on stdin: the
// same six analysis operations the API serves, for local use without a
// server or database.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"claritext/internal/annotate"
	"claritext/internal/config"
	"claritext/internal/domain/entity"
	infragrpc "claritext/internal/infra/grpc"
	infrasentiment "claritext/internal/infra/sentiment"
	"claritext/internal/lexicon"
	"claritext/internal/usecase/entities"
	"claritext/internal/usecase/keywords"
	"claritext/internal/usecase/normalize"
	"claritext/internal/usecase/patterns"
	"claritext/internal/usecase/sentiment"
	"claritext/internal/usecase/summarize"
)

const operationTimeout = 60 * time.Second

// annotatorProvider is what both the gRPC annotator client and the no-op
// replacement provide.
type annotatorProvider interface {
	annotate.Annotator
	entities.Provider
	Close() error
}

type services struct {
	normalize *normalize.Service
	summarize *summarize.Service
	patterns  *patterns.Service
	keywords  *keywords.Service
	entities  *entities.Service
	sentiment *sentiment.Service
}

func main() {
	logger := initLogger()

	annotator, cleanup := initAnnotator(logger)
	defer cleanup()

	sentimentProvider := initSentimentProvider(logger)
	defer func() {
		if err := sentimentProvider.Close(); err != nil {
			logger.Error("failed to close sentiment provider", slog.Any("error", err))
		}
	}()

	lex, err := lexicon.Load()
	if err != nil {
		logger.Warn("lexicon load failed, using built-in defaults", slog.Any("error", err))
		lex = lexicon.Default()
	}

	svcs := services{
		normalize: normalize.NewService(annotator, lex),
		summarize: summarize.NewService(annotator),
		patterns:  patterns.NewService(),
		keywords:  keywords.NewService(annotator, lex),
		entities:  entities.NewService(annotator),
		sentiment: sentiment.NewService(sentimentProvider),
	}

	runMenu(svcs)
}

func initLogger() *slog.Logger {
	logLevel := slog.LevelWarn
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	return logger
}

// initAnnotator connects to the external annotation service, falling back
// to the no-op client so the heuristic operations still work offline.
func initAnnotator(logger *slog.Logger) (annotatorProvider, func()) {
	cfg, err := config.LoadAnnotatorConfig()
	if err != nil {
		logger.Error("invalid annotator configuration", slog.Any("error", err))
		os.Exit(1)
	}

	if !cfg.Enabled {
		logger.Warn("annotator disabled, running on heuristic fallback")
		return infragrpc.NewNoopAnnotator(), func() {}
	}

	client, err := infragrpc.NewAnnotatorClient(cfg)
	if err != nil {
		logger.Warn("annotator unreachable, running on heuristic fallback",
			slog.String("address", cfg.GRPCAddress),
			slog.Any("error", err))
		return infragrpc.NewNoopAnnotator(), func() {}
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			logger.Error("failed to close annotator client", slog.Any("error", err))
		}
	}
	return client, cleanup
}

func initSentimentProvider(logger *slog.Logger) sentiment.Provider {
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		if provider, err := infrasentiment.NewClaude(key); err == nil {
			return provider
		}
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		if provider, err := infrasentiment.NewOpenAI(key); err == nil {
			return provider
		}
	}
	return infrasentiment.NewNoOp()
}

func runMenu(svcs services) {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println("\n=== claritext: Menú de utilidades ===")
		fmt.Println("1) Normalizador de texto")
		fmt.Println("2) Buscar patrones (fechas, dinero, correos)")
		fmt.Println("3) Resumen simple")
		fmt.Println("4) Extracción de entidades")
		fmt.Println("5) Palabras clave")
		fmt.Println("6) Análisis de sentimiento")
		fmt.Println("0) Salir")

		option := prompt(reader, "Selecciona una opción: ")

		switch option {
		case "0":
			fmt.Println("Saliendo.")
			return
		case "1":
			runNormalize(reader, svcs.normalize)
		case "2":
			runPatterns(reader, svcs.patterns)
		case "3":
			runSummarize(reader, svcs.summarize)
		case "4":
			runEntities(reader, svcs.entities)
		case "5":
			runKeywords(reader, svcs.keywords)
		case "6":
			runSentiment(reader, svcs.sentiment)
		default:
			fmt.Println("Opción no válida, intenta de nuevo.")
		}
	}
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "0"
	}
	return strings.TrimSpace(line)
}

func runNormalize(reader *bufio.Reader, svc *normalize.Service) {
	text := prompt(reader, "Ingresa texto a normalizar:\n> ")
	ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
	defer cancel()

	res, err := svc.Normalize(ctx, text)
	if err != nil {
		printError(err)
		return
	}

	fmt.Println("\n--- RESULTADOS ---")
	fmt.Println("Texto Original:\n", res.Original)
	fmt.Println("\nTexto Lematizado:\n", orNone(res.Lemmatized))
	fmt.Println("\nTexto sin Repeticiones:\n", res.Deduplicated)
	fmt.Println("\nTexto Corregido:\n", orNone(res.Corrected))
}

func runPatterns(reader *bufio.Reader, svc *patterns.Service) {
	text := prompt(reader, "Introduce texto para analizar patrones:\n")
	ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
	defer cancel()

	res, err := svc.Extract(ctx, text)
	if err != nil {
		printError(err)
		return
	}

	fmt.Println("\nFechas encontradas:", orNoneList(res.Dates))
	fmt.Println("Cifras de dinero:", orNoneList(res.Money))
	fmt.Println("Correos electrónicos:", orNoneList(res.Emails))
}

func runSummarize(reader *bufio.Reader, svc *summarize.Service) {
	text := prompt(reader, "Introduce texto para resumir:\n")
	ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
	defer cancel()

	res, err := svc.Summarize(ctx, text, 3)
	if err != nil {
		printError(err)
		return
	}

	fmt.Println("\n--- RESUMEN ---")
	fmt.Println(res.Summary)
}

func runEntities(reader *bufio.Reader, svc *entities.Service) {
	text := prompt(reader, "Introduce texto para extraer entidades (NER):\n")
	ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
	defer cancel()

	res, err := svc.Extract(ctx, text)
	if err != nil {
		printError(err)
		return
	}

	fmt.Println("\nPersonas:", orNoneList(res.Persons))
	fmt.Println("Lugares:", orNoneList(res.Places))
	fmt.Println("Organizaciones:", orNoneList(res.Organizations))
	fmt.Println("Fechas:", orNoneList(res.Dates))
	fmt.Println("Cantidades:", orNoneList(res.Quantities))
}

func runKeywords(reader *bufio.Reader, svc *keywords.Service) {
	text := prompt(reader, "Introduce texto para extraer palabras clave:\n")
	ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
	defer cancel()

	res, err := svc.Extract(ctx, text)
	if err != nil {
		printError(err)
		return
	}

	fmt.Println("\nTop 5 palabras:", formatCounts(res.TopWords))
	fmt.Println("Sustantivos relevantes:", formatCounts(res.Nouns))
	fmt.Println("Verbos principales:", formatCounts(res.Verbs))
}

func runSentiment(reader *bufio.Reader, svc *sentiment.Service) {
	text := prompt(reader, "Introduce texto para análisis de sentimiento:\n")
	ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
	defer cancel()

	res, err := svc.Classify(ctx, text)
	if err != nil {
		printError(err)
		return
	}

	fmt.Printf("Resultado: %s (Confianza: %.4f) Estrellas: %s\n", res.Sentiment, res.Confidence, res.RawLabel)
}

func printError(err error) {
	switch {
	case errors.Is(err, entity.ErrEmptyInput):
		fmt.Println("Texto inválido.")
	default:
		fmt.Printf("Ocurrió un error: %v\n", err)
	}
}

func orNone(s string) string {
	if s == "" {
		return "(no disponible sin anotador)"
	}
	return s
}

func orNoneList(items []string) string {
	if len(items) == 0 {
		return "Ninguno"
	}
	return strings.Join(items, ", ")
}

func formatCounts(wcs []keywords.WordCount) string {
	if len(wcs) == 0 {
		return "Ninguna"
	}
	parts := make([]string, 0, len(wcs))
	for _, wc := range wcs {
		parts = append(parts, fmt.Sprintf("%s (%d)", wc.Word, wc.Count))
	}
	return strings.Join(parts, ", ")
}
