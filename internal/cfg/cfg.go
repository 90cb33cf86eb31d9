package cfg

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jimlawless/whereami"
	"github.com/maison-aurelle/storefront/pkg/e"
	"github.com/maison-aurelle/storefront/pkg/logger"
	"github.com/shopspring/decimal"
)

type Config struct {
	Http    *HTTPConfig
	Db      *PGDBCfg
	Redis   *RedisCfg
	Kafka   *KafkaCfg
	Minio   *MinIOCfg
	Pricing *PricingCfg
	Coupon  *CouponCfg
	Catalog *CatalogCfg
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type PGDBCfg struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisCfg struct {
	Addr        string
	Password    string
	User        string
	DB          int
	MaxRetries  int
	DialTimeout time.Duration
	Timeout     time.Duration
	SessionTTL  time.Duration
}

type KafkaCfg struct {
	Topic             string
	Brokers           []string
	NetworkMode       string
	Partitions        int
	ReplicationFactor int
}

type MinIOCfg struct {
	MinioEndpoint     string // Адрес конечной точки MinIO
	BucketName        string // Бакет с изображениями товаров
	MinioRootUser     string
	MinioRootPassword string
	MinioUseSSL       bool
	UploadImagesLimit int // Лимит одновременных загрузок в S3
}

// PricingCfg — константы ценообразования корзины и чекаута.
type PricingCfg struct {
	ShippingFeeCents int64           // Плоская ставка доставки в центах
	TaxRate          decimal.Decimal // Налоговая ставка чекаута, например 0.08
}

// CouponCfg — параметры применения купонов.
type CouponCfg struct {
	ApplyDelay time.Duration // Имитация сетевой задержки при проверке кода
}

// CatalogCfg — источник каталога товаров.
type CatalogCfg struct {
	Provider string // memory | postgres
	Seed     int64  // Сид генератора витринного каталога
	Size     int    // Размер витринного каталога при memory-провайдере
}

const (
	CatalogProviderMemory   = "memory"
	CatalogProviderPostgres = "postgres"
)

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
func Load(log logger.Logger) (*Config, error) {
	db, err := loadPGDBCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	redis, err := loadRedisCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	kafka, err := loadKafkaCfg()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minio, err := loadMinIOCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	pricing, err := loadPricingCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	coupon, err := loadCouponCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	catalog, err := loadCatalogCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		Http:    http,
		Db:      db,
		Redis:   redis,
		Kafka:   kafka,
		Minio:   minio,
		Pricing: pricing,
		Coupon:  coupon,
		Catalog: catalog,
	}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8080"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 10 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	port := getEnvOrDefault("HTTP_PORT", defaultPort)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:         port,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}, nil
}

func loadPGDBCfg(log logger.Logger) (*PGDBCfg, error) {
	const (
		defaultHost    = "localhost"
		defaultPort    = "5432"
		defaultSSLMode = "disable"
	)

	user := getEnv("POSTGRES_USER")
	if user == "" {
		err := fmt.Errorf("POSTGRES_USER is required")
		log.Errorf(err, "missing POSTGRES_USER")
		return nil, err
	}

	password := getEnv("POSTGRES_PASSWORD")
	if password == "" {
		err := fmt.Errorf("POSTGRES_PASSWORD is required")
		log.Errorf(err, "missing POSTGRES_PASSWORD")
		return nil, err
	}

	dbName := getEnv("POSTGRES_DB")
	if dbName == "" {
		err := fmt.Errorf("POSTGRES_DB is required")
		log.Errorf(err, "missing POSTGRES_DB")
		return nil, err
	}

	return &PGDBCfg{
		Host:     getEnvOrDefault("POSTGRES_HOST", defaultHost),
		Port:     getEnvOrDefault("POSTGRES_PORT", defaultPort),
		User:     user,
		Password: password,
		DBName:   dbName,
		SSLMode:  getEnvOrDefault("SSL_MODE", defaultSSLMode),
	}, nil
}

func loadRedisCfg(log logger.Logger) (*RedisCfg, error) {
	const (
		defaultAddr         = "localhost:6379"
		defaultDB           = 0
		defaultMaxRetries   = 3
		defaultDialTimeout  = 5 * time.Second
		defaultReadTimeout  = 3 * time.Second
		defaultWriteTimeout = 3 * time.Second
		defaultSessionTTL   = 24 * time.Hour
	)

	addr := getEnvOrDefault("REDIS_ADDR", defaultAddr)
	password := getEnv("REDIS_PASSWORD")
	user := getEnv("REDIS_USER")

	dbStr := getEnvOrDefault("REDIS_DB_ID", strconv.Itoa(defaultDB))
	db, err := strconv.Atoi(dbStr)
	if err != nil {
		log.Errorf(err, "invalid REDIS_DB_ID")
		return nil, err
	}

	maxRetriesStr := getEnvOrDefault("MAX_RETRIES", strconv.Itoa(defaultMaxRetries))
	maxRetries, err := strconv.Atoi(maxRetriesStr)
	if err != nil {
		log.Errorf(err, "invalid MAX_RETRIES")
		return nil, err
	}

	dialTimeout, err := parseDurationEnv("DIAL_TIMEOUT", defaultDialTimeout)
	if err != nil {
		log.Errorf(err, "invalid DIAL_TIMEOUT")
		return nil, err
	}

	readTimeout, err := parseDurationEnv("READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid WRITE_TIMEOUT")
		return nil, err
	}

	sessionTTL, err := parseDurationEnv("SESSION_TTL", defaultSessionTTL)
	if err != nil {
		log.Errorf(err, "invalid SESSION_TTL")
		return nil, err
	}

	timeout := readTimeout
	if writeTimeout > timeout {
		timeout = writeTimeout
	}

	return &RedisCfg{
		Addr:        addr,
		Password:    password,
		User:        user,
		DB:          db,
		MaxRetries:  maxRetries,
		DialTimeout: dialTimeout,
		Timeout:     timeout,
		SessionTTL:  sessionTTL,
	}, nil
}

func loadKafkaCfg() (*KafkaCfg, error) {
	const (
		defaultTopic             = "orders.placed"
		defaultPartitions        = 3
		defaultReplicationFactor = 1
		defaultNetworkMode       = "tcp"
	)

	brokerStr := os.Getenv("KAFKA_BROKERS")
	if brokerStr == "" {
		return nil, fmt.Errorf("KAFKA_BROKERS environment variable is required")
	}
	brokers := strings.Split(brokerStr, ",")

	topic := getEnvOrDefault("KAFKA_TOPIC", defaultTopic)

	partitions, err := parseIntEnv("KAFKA_PARTITIONS", defaultPartitions)
	if err != nil {
		return nil, e.Wrap("KAFKA_PARTITIONS", err)
	}

	replicationFactor, err := parseIntEnv("REPLICATION_FACTOR", defaultReplicationFactor)
	if err != nil {
		return nil, e.Wrap("REPLICATION_FACTOR", err)
	}

	networkMode := getEnvOrDefault("KAFKA_NETWORK_MODE", defaultNetworkMode)

	return &KafkaCfg{
		Brokers:           brokers,
		Topic:             topic,
		Partitions:        partitions,
		ReplicationFactor: replicationFactor,
		NetworkMode:       networkMode,
	}, nil
}

func loadMinIOCfg(log logger.Logger) (*MinIOCfg, error) {
	const (
		defaultUseSSL   = false
		defaultEndpoint = "minio:9000"
	)

	useSSL, err := strconv.ParseBool(getEnvOrDefault("MINIO_USE_SSL", strconv.FormatBool(defaultUseSSL)))
	if err != nil {
		log.Errorf(err, "invalid MINIO_USE_SSL")
		return nil, err
	}

	return &MinIOCfg{
		MinioEndpoint:     getEnvOrDefault("MINIO_ENDPOINT", defaultEndpoint),
		BucketName:        getEnv("BUCKET_NAME"),
		MinioRootUser:     getEnv("MINIO_ROOT_USER"),
		MinioRootPassword: getEnv("MINIO_ROOT_PASSWORD"),
		MinioUseSSL:       useSSL,
		UploadImagesLimit: 10,
	}, nil
}

func loadPricingCfg(log logger.Logger) (*PricingCfg, error) {
	const (
		defaultShippingFee = "5.99"
		defaultTaxRate     = "0.08"
	)

	feeStr := getEnvOrDefault("SHIPPING_FEE", defaultShippingFee)
	fee, err := decimal.NewFromString(feeStr)
	if err != nil || fee.IsNegative() {
		log.Errorf(err, "invalid SHIPPING_FEE: %s", feeStr)
		return nil, e.ErrIncorrectEnvVariable
	}

	rateStr := getEnvOrDefault("TAX_RATE", defaultTaxRate)
	rate, err := decimal.NewFromString(rateStr)
	if err != nil || rate.IsNegative() {
		log.Errorf(err, "invalid TAX_RATE: %s", rateStr)
		return nil, e.ErrIncorrectEnvVariable
	}

	return &PricingCfg{
		ShippingFeeCents: fee.Mul(decimal.NewFromInt(100)).Round(0).IntPart(),
		TaxRate:          rate,
	}, nil
}

func loadCouponCfg(log logger.Logger) (*CouponCfg, error) {
	const defaultApplyDelay = 300 * time.Millisecond

	applyDelay, err := parseDurationEnv("COUPON_APPLY_DELAY", defaultApplyDelay)
	if err != nil {
		log.Errorf(err, "invalid COUPON_APPLY_DELAY")
		return nil, err
	}

	return &CouponCfg{ApplyDelay: applyDelay}, nil
}

func loadCatalogCfg(log logger.Logger) (*CatalogCfg, error) {
	const (
		defaultProvider = CatalogProviderPostgres
		defaultSeed     = 1
		defaultSize     = 48
	)

	provider := getEnvOrDefault("CATALOG_PROVIDER", defaultProvider)
	if provider != CatalogProviderMemory && provider != CatalogProviderPostgres {
		err := fmt.Errorf("CATALOG_PROVIDER must be %q or %q", CatalogProviderMemory, CatalogProviderPostgres)
		log.Errorf(err, "invalid CATALOG_PROVIDER")
		return nil, err
	}

	seed, err := parseIntEnv("CATALOG_SEED", defaultSeed)
	if err != nil {
		return nil, e.Wrap("CATALOG_SEED", err)
	}

	size, err := parseIntEnv("CATALOG_SIZE", defaultSize)
	if err != nil {
		return nil, e.Wrap("CATALOG_SIZE", err)
	}

	return &CatalogCfg{
		Provider: provider,
		Seed:     int64(seed),
		Size:     size,
	}, nil
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return os.Getenv(key)
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return intValue, nil
}
