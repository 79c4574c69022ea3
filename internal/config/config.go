package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// PriceBroadcastMode define quais vendors recebem o broadcast de mudança de
// preço. A escolha é explícita por configuração: "all" notifica todos os
// vendors; "active_campaigns" apenas os que têm campanha ativa do formato
// alterado.
type PriceBroadcastMode string

const (
	BroadcastAll             PriceBroadcastMode = "all"
	BroadcastActiveCampaigns PriceBroadcastMode = "active_campaigns"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	Pricing       Pricing       `mapstructure:",squash"`
	Placement     Placement     `mapstructure:",squash"`
	Realtime      Realtime      `mapstructure:",squash"`
	CampaignSweep CampaignSweep `mapstructure:",squash"`
	Gateway       Gateway       `mapstructure:",squash"`
	Storage       Storage       `mapstructure:",squash"`
	Media         Media         `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Pricing concentra as taxas de negócio em um único lugar. Os percentuais de
// comissão e GST aparecem em três telas (preview da submissão, cobrança e
// analytics) e todas derivam destes valores.
type Pricing struct {
	PlatformFeeRate float64            `mapstructure:"pricing_platform_fee_rate"`
	GSTRate         float64            `mapstructure:"pricing_gst_rate"`
	MaxPrice        float64            `mapstructure:"pricing_max_price"`
	Currency        string             `mapstructure:"pricing_currency"`
	BroadcastMode   PriceBroadcastMode `mapstructure:"price_broadcast_mode"`
	PlatformFee     decimal.Decimal    `mapstructure:"-"`
	GST             decimal.Decimal    `mapstructure:"-"`
	MaxPriceAmount  decimal.Decimal    `mapstructure:"-"`
}

type Placement struct {
	DefaultDailyImpressionLimit int64 `mapstructure:"placement_default_daily_impression_limit"`
	RotationIntervalSeconds     int   `mapstructure:"placement_rotation_interval_seconds"`
	PopupDelaySeconds           int   `mapstructure:"placement_popup_delay_seconds"`
	DefaultDisplayPriority      int   `mapstructure:"placement_default_display_priority"`
}

type Realtime struct {
	Transport           string `mapstructure:"realtime_transport"` // listener | polling
	PollIntervalSeconds int    `mapstructure:"realtime_poll_interval_seconds"`
	Channel             string `mapstructure:"realtime_channel"`
}

type CampaignSweep struct {
	CronSchedule string `mapstructure:"campaign_sweep_cron"`
	Enabled      bool   `mapstructure:"campaign_sweep_enabled"`
}

type Gateway struct {
	URL         string `mapstructure:"gateway_url"`
	APIKey      string `mapstructure:"gateway_api_key"`
	TimeoutSecs int    `mapstructure:"gateway_timeout_seconds"`
}

type Storage struct {
	URL         string `mapstructure:"storage_url"`
	APIKey      string `mapstructure:"storage_api_key"`
	TimeoutSecs int    `mapstructure:"storage_timeout_seconds"`
}

type Media struct {
	MaxImageSizeBytes int64 `mapstructure:"media_max_image_size_bytes"`
	MaxVideoSizeBytes int64 `mapstructure:"media_max_video_size_bytes"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/adboard")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Taxas de negócio: 10% de comissão da plataforma e 18% de GST
	viper.SetDefault("PRICING_PLATFORM_FEE_RATE", 0.10)
	viper.SetDefault("PRICING_GST_RATE", 0.18)
	viper.SetDefault("PRICING_MAX_PRICE", 1000000) // teto de ₹10,00,000
	viper.SetDefault("PRICING_CURRENCY", "INR")
	viper.SetDefault("PRICE_BROADCAST_MODE", string(BroadcastActiveCampaigns))

	viper.SetDefault("PLACEMENT_DEFAULT_DAILY_IMPRESSION_LIMIT", 10000)
	viper.SetDefault("PLACEMENT_ROTATION_INTERVAL_SECONDS", 10)
	viper.SetDefault("PLACEMENT_POPUP_DELAY_SECONDS", 5)
	viper.SetDefault("PLACEMENT_DEFAULT_DISPLAY_PRIORITY", 5)

	viper.SetDefault("REALTIME_TRANSPORT", "polling")
	viper.SetDefault("REALTIME_POLL_INTERVAL_SECONDS", 30)
	viper.SetDefault("REALTIME_CHANNEL", "adboard_events")

	viper.SetDefault("CAMPAIGN_SWEEP_CRON", "0 0 * * *") // todos os dias à meia-noite
	viper.SetDefault("CAMPAIGN_SWEEP_ENABLED", true)

	viper.SetDefault("GATEWAY_URL", "http://localhost:9000")
	viper.SetDefault("GATEWAY_API_KEY", "")
	viper.SetDefault("GATEWAY_TIMEOUT_SECONDS", 10)

	viper.SetDefault("STORAGE_URL", "http://localhost:9001")
	viper.SetDefault("STORAGE_API_KEY", "")
	viper.SetDefault("STORAGE_TIMEOUT_SECONDS", 30)

	viper.SetDefault("MEDIA_MAX_IMAGE_SIZE_BYTES", 10*1024*1024)  // 10MB
	viper.SetDefault("MEDIA_MAX_VIDEO_SIZE_BYTES", 100*1024*1024) // 100MB

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Pricing.normalize(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// normalize converte as taxas em decimais e valida o modo de broadcast
func (p *Pricing) normalize() error {
	if p.PlatformFeeRate < 0 || p.GSTRate < 0 {
		return fmt.Errorf("taxas de precificação não podem ser negativas")
	}

	switch p.BroadcastMode {
	case BroadcastAll, BroadcastActiveCampaigns:
	default:
		return fmt.Errorf("modo de broadcast de preço inválido: %s", p.BroadcastMode)
	}

	p.PlatformFee = decimal.NewFromFloat(p.PlatformFeeRate)
	p.GST = decimal.NewFromFloat(p.GSTRate)
	p.MaxPriceAmount = decimal.NewFromFloat(p.MaxPrice)

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
