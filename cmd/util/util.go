package util

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/ValentinKolb/rbundle/lib/bundle"
	"github.com/ValentinKolb/rbundle/lib/bundle/format"
	"github.com/ValentinKolb/rbundle/lib/bundle/loader"
	"github.com/ValentinKolb/rbundle/lib/bundle/source"
	"github.com/ValentinKolb/rbundle/lib/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joho/godotenv"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		// Add the word
		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// --------------------------------------------------------------------------
// Flags & Environment
// --------------------------------------------------------------------------

// Environment variables read when connecting to object stores
const (
	envVarAWSKey           = "AWS_ACCESS_KEY_ID"
	envVarAWSSecret        = "AWS_SECRET_ACCESS_KEY"
	envVarAWSRegion        = "AWS_REGION"
	envVarAzureConnection  = "AZURE_STORAGE_CONNECTION_STRING"
	azureBlobDefaultSuffix = "blob.core.windows.net"
)

// SetupBundleFlags adds the flags shared by all bundle commands
func SetupBundleFlags(cmd *cobra.Command) {
	key := "source"
	cmd.PersistentFlags().String(key, ".", WrapString("Where bundles are read from. Either a comma-separated list of directories (searched in order), s3://bucket/prefix or azblob://container/prefix"))

	key = "format"
	cmd.PersistentFlags().String(key, "properties", WrapString("The bundle file format (properties, env, yaml, json)"))

	key = "locale"
	cmd.PersistentFlags().String(key, "", WrapString("Locale of the bundle (e.g. de_AT). Candidates name_de_AT, name_de and name are merged, the most specific wins. Empty means the base bundle only"))

	key = "s3-endpoint"
	cmd.PersistentFlags().String(key, "", WrapString("Custom S3 endpoint (e.g. http://localhost:9000 for MinIO). Path-style addressing is used if set"))

	key = "log-level"
	cmd.PersistentFlags().String(key, "warn", WrapString("The level at which logs will be output to stderr (debug, info, warn, error)"))

	key = "log-json"
	cmd.PersistentFlags().Bool(key, false, WrapString("Whether to write logs as JSON"))

	key = "metrics"
	cmd.PersistentFlags().Bool(key, false, WrapString("Whether to print the iteration metrics in Prometheus text format to stderr when the command finishes"))
}

// InitConfig initializes configuration from environment variables
func InitConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("rbundle")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}

// --------------------------------------------------------------------------
// Configuration
// --------------------------------------------------------------------------

// Config holds the settings of a bundle command
type Config struct {
	Source     string
	Format     string
	Locale     string
	S3Endpoint string
	LogLevel   string
	LogJSON    bool
	Metrics    bool
}

// GetConfig reads the configuration from viper
func GetConfig() *Config {
	return &Config{
		Source:     viper.GetString("source"),
		Format:     viper.GetString("format"),
		Locale:     viper.GetString("locale"),
		S3Endpoint: viper.GetString("s3-endpoint"),
		LogLevel:   viper.GetString("log-level"),
		LogJSON:    viper.GetBool("log-json"),
		Metrics:    viper.GetBool("metrics"),
	}
}

// String returns a formatted string representation of the configuration
func (c *Config) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	addSection("Bundles")
	addField("Source", c.Source)
	addField("Format", c.Format)
	locale := c.Locale
	if locale == "" {
		locale = "(base bundle only)"
	}
	addField("Locale", locale)
	if c.S3Endpoint != "" {
		addField("S3 Endpoint", c.S3Endpoint)
	}

	addSection("Logging")
	addField("Log Level", c.LogLevel)
	addField("JSON", fmt.Sprintf("%t", c.LogJSON))

	addSection("Metrics")
	addField("Enabled", fmt.Sprintf("%t", c.Metrics))

	return sb.String()
}

// --------------------------------------------------------------------------
// Factories
// --------------------------------------------------------------------------

// GetLogging creates and initializes the log manager for the configuration
func GetLogging(c *Config) (*logging.Manager, error) {
	m, err := logging.New(logging.Config{
		Level:  c.LogLevel,
		JSON:   c.LogJSON,
		Output: os.Stderr,
	})
	if err != nil {
		return nil, err
	}
	m.Init()
	return m, nil
}

// GetLoader creates the bundle loader for the configuration
func GetLoader(ctx context.Context, c *Config, log logger.ILogger) (bundle.ILoader, error) {
	decoder, err := format.ByName(c.Format)
	if err != nil {
		return nil, err
	}

	locale, err := bundle.ParseLocale(c.Locale)
	if err != nil {
		return nil, err
	}

	src, err := GetSource(ctx, c, os.Getenv)
	if err != nil {
		return nil, err
	}
	log.Debugf("reading %s bundles from %s", decoder.Name(), src)

	return loader.NewSourceLoader(src, decoder, &loader.SourceOptions{
		Locale: locale,
		Logger: log,
	})
}

// GetSource converts the source location, which may be a list of local
// directories, an 's3://' or an 'azblob://' URL, into an ISource.
func GetSource(ctx context.Context, c *Config, getenv func(string) string) (source.ISource, error) {
	location := strings.TrimSpace(c.Source)
	if location == "" {
		location = "."
	}

	if !strings.Contains(location, "://") {
		var dirs []string
		for _, dir := range strings.Split(location, ",") {
			abs, err := filepath.Abs(strings.TrimSpace(dir))
			if err != nil {
				return nil, err
			}
			dirs = append(dirs, abs)
		}
		return source.NewOSSource(dirs...), nil
	}

	rl, err := url.Parse(location)
	if err != nil {
		return nil, fmt.Errorf("invalid source %s: %w", location, err)
	}
	prefix := strings.TrimPrefix(rl.Path, "/")

	switch rl.Scheme {
	case "s3":
		var loadOpts []func(*config.LoadOptions) error
		if secret := getenv(envVarAWSSecret); secret != "" {
			creds := credentials.NewStaticCredentialsProvider(getenv(envVarAWSKey), secret, "")
			loadOpts = append(loadOpts, config.WithCredentialsProvider(creds))
		}
		if region := getenv(envVarAWSRegion); region != "" {
			loadOpts = append(loadOpts, config.WithRegion(region))
		}
		cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
		if err != nil {
			return nil, err
		}
		var s3Opts []func(*s3.Options)
		if c.S3Endpoint != "" {
			s3Opts = append(s3Opts, func(o *s3.Options) {
				o.BaseEndpoint = aws.String(c.S3Endpoint)
				o.UsePathStyle = true
			})
		}
		return source.NewS3Source(s3.NewFromConfig(cfg, s3Opts...), rl.Host, prefix), nil

	case "azblob":
		connStr := getenv(envVarAzureConnection)
		if connStr == "" {
			return nil, fmt.Errorf("%s must be set to read from %s", envVarAzureConnection, location)
		}
		var clientOpts *azblob.ClientOptions
		if endpoint := azureBlobEndpoint(connStr); strings.HasPrefix(strings.ToLower(endpoint), "http://") {
			clientOpts = &azblob.ClientOptions{
				ClientOptions: azcore.ClientOptions{
					InsecureAllowCredentialWithHTTP: true,
				},
			}
		}
		client, err := azblob.NewClientFromConnectionString(connStr, clientOpts)
		if err != nil {
			return nil, fmt.Errorf("failed to create blob client: %w", err)
		}
		return source.NewAzureBlobSource(client, rl.Host, prefix), nil

	default:
		return nil, fmt.Errorf("invalid source scheme %s (expected s3, azblob or a directory list)", rl.Scheme)
	}
}

// azureBlobEndpoint returns the blob service URL of a storage connection string
func azureBlobEndpoint(connStr string) string {
	params := make(map[string]string)
	for _, part := range strings.Split(connStr, ";") {
		if k, v, ok := strings.Cut(strings.TrimSpace(part), "="); ok {
			params[k] = v
		}
	}
	if endpoint := params["BlobEndpoint"]; endpoint != "" {
		return endpoint
	}
	protocol := params["DefaultEndpointsProtocol"]
	if protocol == "" {
		protocol = "https"
	}
	return fmt.Sprintf("%s://%s.%s", protocol, params["AccountName"], azureBlobDefaultSuffix)
}
