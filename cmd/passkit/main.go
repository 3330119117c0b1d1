// Command passkit generates human-memorable passphrases from the command
// line.
//
// The policy comes from a named preset (-preset), a YAML policy file
// (-policy), or the baseline default; -all prints one passphrase per
// built-in preset. Words are drawn from the bundled dictionary unless -dict
// points at a file in the "length:word,word,..." format. With -qr the
// generated passphrase is additionally written as a QR code PNG, which is
// handy for the wifi preset.
//
// Defaults can also be supplied through the environment (PASSKIT_PRESET,
// PASSKIT_POLICY_FILE, PASSKIT_DICT_FILE, PASSKIT_LOG_LEVEL,
// PASSKIT_LOG_FORMAT), including via a .env file; flags win over the
// environment.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/dmitrymomot/passkit"
	"github.com/dmitrymomot/passkit/pkg/dict"
	"github.com/dmitrymomot/passkit/pkg/logger"
	"github.com/dmitrymomot/passkit/pkg/policyfile"
)

type config struct {
	Preset     string `env:"PASSKIT_PRESET" envDefault:"default"`
	PolicyFile string `env:"PASSKIT_POLICY_FILE"`
	DictFile   string `env:"PASSKIT_DICT_FILE"`
	LogLevel   string `env:"PASSKIT_LOG_LEVEL" envDefault:"info"`
	LogFormat  string `env:"PASSKIT_LOG_FORMAT" envDefault:"text"`
}

const qrSize = 256

func main() {
	if err := run(); err != nil {
		slog.Error("passkit failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	// The .env file is optional.
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}

	flag.StringVar(&cfg.Preset, "preset", cfg.Preset, "named policy preset")
	flag.StringVar(&cfg.PolicyFile, "policy", cfg.PolicyFile, "YAML policy file, overrides -preset")
	flag.StringVar(&cfg.DictFile, "dict", cfg.DictFile, "dictionary file in length:word,word format")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	flag.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text or json")
	allPresets := flag.Bool("all", false, "print one passphrase per built-in preset")
	qrPath := flag.String("qr", "", "also write the passphrase as a QR code PNG to this path")
	flag.Parse()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
	)
	logger.SetAsDefault(log)

	d, err := loadDict(cfg.DictFile)
	if err != nil {
		return fmt.Errorf("load dictionary: %w", err)
	}
	log.Debug("dictionary loaded", slog.Int("words", d.Size()))

	if *allPresets {
		for _, preset := range passkit.Presets() {
			policy := passkit.FromPreset(preset)
			fmt.Printf("%s: %s\n", preset, generate(policy, d))
		}
		return nil
	}

	policy, err := resolvePolicy(cfg)
	if err != nil {
		return fmt.Errorf("resolve policy: %w", err)
	}

	pass := generate(policy, d)
	fmt.Println(pass)

	if *qrPath != "" {
		if err := writeQR(pass, *qrPath); err != nil {
			return fmt.Errorf("write QR code: %w", err)
		}
		log.Info("QR code written", slog.String("path", *qrPath))
	}

	return nil
}

func loadDict(path string) (dict.Dict, error) {
	if path == "" {
		return dict.Builtin(), nil
	}
	return dict.ParseFile(path)
}

func resolvePolicy(cfg config) (passkit.Policy, error) {
	if cfg.PolicyFile != "" {
		return policyfile.LoadFile(cfg.PolicyFile)
	}
	return passkit.FromPreset(passkit.ParsePreset(cfg.Preset)), nil
}

func generate(policy passkit.Policy, d dict.Dict) string {
	pool := d.Between(policy.WordLengths())
	return passkit.NewGenerator(policy).Generate(pool)
}

func writeQR(pass, path string) error {
	if pass == "" {
		return errors.New("refusing to encode an empty passphrase")
	}
	png, err := qrcode.Encode(pass, qrcode.Medium, qrSize)
	if err != nil {
		return err
	}
	return os.WriteFile(path, png, 0o600)
}
