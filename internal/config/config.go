package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"pull-request-stats/internal/apperrors"
)

type Config struct {
	Env    string       `env:"ENV" env-default:"dev"`
	GitHub GitHubConfig `env-prefix:"GITHUB_"`
}

type GitHubConfig struct {
	Token   string        `env:"TOKEN"`
	APIURL  string        `env:"API_URL"`
	Timeout time.Duration `env:"TIMEOUT" env-default:"30s"`
}

func MustLoad() *Config {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		panic("failed to read config from environment: " + err.Error())
	}

	return &cfg
}

type AnalyzeMode string

const (
	AnalyzeOpen   AnalyzeMode = "open"
	AnalyzeMerged AnalyzeMode = "merged"
)

type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
)

// Options holds the validated command-line options of a single run.
type Options struct {
	Mode            AnalyzeMode
	Output          OutputFormat
	Owner           string
	Repo            string
	PRLimit         int
	IndividualStats bool
}

// ParseFlags parses and validates the CLI flags. Mode and format values are
// checked here, once, so nothing downstream ever sees an unknown kind.
func ParseFlags(args []string) (*Options, error) {
	fs := flag.NewFlagSet("pr-report", flag.ContinueOnError)

	analyze := fs.String("analyze", "", "what to analyze: 'open' or 'merged'")
	repoName := fs.String("repo-name", "", "repository in 'owner/repo' form")
	prLimit := fs.Int("pr-limit", 10, "maximum number of pull requests to fetch")
	output := fs.String("output", "text", "output format: 'text' or 'json'")
	individualStats := fs.Bool("individual-stats", false, "include per-contributor review statistics")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	mode, err := ParseAnalyzeMode(*analyze)
	if err != nil {
		return nil, err
	}

	format, err := ParseOutputFormat(*output)
	if err != nil {
		return nil, err
	}

	owner, repo, err := splitRepoName(*repoName)
	if err != nil {
		return nil, err
	}

	if *prLimit <= 0 {
		return nil, fmt.Errorf("%w: got %d", apperrors.ErrInvalidPRLimit, *prLimit)
	}

	return &Options{
		Mode:            mode,
		Output:          format,
		Owner:           owner,
		Repo:            repo,
		PRLimit:         *prLimit,
		IndividualStats: *individualStats,
	}, nil
}

func ParseAnalyzeMode(s string) (AnalyzeMode, error) {
	switch strings.ToLower(s) {
	case string(AnalyzeOpen):
		return AnalyzeOpen, nil
	case string(AnalyzeMerged):
		return AnalyzeMerged, nil
	default:
		return "", fmt.Errorf("%w: got %q", apperrors.ErrUnknownAnalyzeMode, s)
	}
}

func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case string(OutputText):
		return OutputText, nil
	case string(OutputJSON):
		return OutputJSON, nil
	default:
		return "", fmt.Errorf("%w: got %q", apperrors.ErrUnknownOutputFormat, s)
	}
}

func splitRepoName(name string) (owner string, repo string, err error) {
	if name == "" {
		return "", "", apperrors.ErrRepoNameRequired
	}

	parts := strings.Split(name, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: got %q", apperrors.ErrInvalidRepoName, name)
	}

	return parts[0], parts[1], nil
}
