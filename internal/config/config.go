package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config/local.yaml"

type Config struct {
	Env         string `yaml:"env" env:"ENV" env-default:"prod"`
	ErrorLog    string `yaml:"error_log" env-default:"errors.log"`
	HTTPServer  `yaml:"http_server"`
	DBUser      string   `yaml:"db_user" env:"DB_USER" env-required:"true"`
	DBPassword  string   `yaml:"db_password" env:"DB_PASSWORD"`
	DBHost      string   `yaml:"db_host" env:"DB_HOST" env-default:"localhost"`
	DBPort      int      `yaml:"db_port" env:"DB_PORT" env-default:"3306"`
	DBName      string   `yaml:"db_name" env:"DB_NAME" env-required:"true"`
	ParseTime   bool     `yaml:"parse_time" env-default:"true"`
	CORSOrigins []string `yaml:"cors_origins" env-default:"http://localhost:5173"`

	ManagerLogin string `yaml:"manager_login" env:"MANAGER_LOGIN"`
	ManagerPass  string `yaml:"manager_pass" env:"MANAGER_PASS"`

	Company Company `yaml:"company"`
	Bank    Bank    `yaml:"bank"`
	Fonts   Fonts   `yaml:"fonts"`
	Pricing Pricing `yaml:"pricing"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:4001"`
	Timeout     time.Duration `yaml:"timeout"  env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout"  env-default:"60s"`
}

// Company: реквизиты исполнителя, печатаются во всех документах.
type Company struct {
	Name          string `yaml:"name" env-default:"ООО «JEWEllUX»"`
	Address       string `yaml:"address" env-default:"123456, г. Москва, ул. Золотая, д. 10, офис 1"`
	City          string `yaml:"city" env-default:"г. Москва"`
	Phone         string `yaml:"phone" env-default:"+7 (999) 123-45-67"`
	Email         string `yaml:"email" env-default:"info@jewelux.com"`
	INN           string `yaml:"inn" env-default:"7701234567"`
	KPP           string `yaml:"kpp" env-default:"770101001"`
	OGRN          string `yaml:"ogrn" env-default:"1107746000001"`
	DirectorTitle string `yaml:"director_title" env-default:"Генеральный директор"`
	DirectorFIO   string `yaml:"director_fio" env-default:"АБдурахманов Г.Г."`
}

type Bank struct {
	Name        string `yaml:"name" env-default:"ПАО Сбербанк"`
	BIK         string `yaml:"bik" env-default:"044525225"`
	Account     string `yaml:"account" env-default:"40702810700000000000"`
	CorrAccount string `yaml:"corr_account" env-default:"30101810400000000225"`
}

// Fonts: TTF с кириллицей. Если файл не найден, используется встроенный в бинарник DejaVu Sans.
type Fonts struct {
	Regular string `yaml:"regular" env:"FONT_REGULAR" env-default:"./fonts/DejaVuSans.ttf"`
	Bold    string `yaml:"bold" env:"FONT_BOLD" env-default:"./fonts/DejaVuSans-Bold.ttf"`
}

// Pricing: тарифы для расчёта предварительной цены. Пустые значения заменяются стандартной таблицей.
type Pricing struct {
	Materials           map[string]float64 `yaml:"materials"`
	Complexity          map[string]float64 `yaml:"complexity"`
	LaborRate           float64            `yaml:"labor_rate" env-default:"0.35"`
	TemplateCoefficient float64            `yaml:"template_coefficient" env-default:"1.5"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}

// Default возвращает конфигурацию со значениями env-default, без чтения файла и окружения.
func Default() Config {
	return Config{
		Env:      "local",
		ErrorLog: "errors.log",
		HTTPServer: HTTPServer{
			Address:     "localhost:4001",
			Timeout:     10 * time.Second,
			IdleTimeout: 60 * time.Second,
		},
		DBHost:    "localhost",
		DBPort:    3306,
		ParseTime: true,
		Company: Company{
			Name:          "ООО «JEWEllUX»",
			Address:       "123456, г. Москва, ул. Золотая, д. 10, офис 1",
			City:          "г. Москва",
			Phone:         "+7 (999) 123-45-67",
			Email:         "info@jewelux.com",
			INN:           "7701234567",
			KPP:           "770101001",
			OGRN:          "1107746000001",
			DirectorTitle: "Генеральный директор",
			DirectorFIO:   "АБдурахманов Г.Г.",
		},
		Bank: Bank{
			Name:        "ПАО Сбербанк",
			BIK:         "044525225",
			Account:     "40702810700000000000",
			CorrAccount: "30101810400000000225",
		},
		Fonts: Fonts{
			Regular: "./fonts/DejaVuSans.ttf",
			Bold:    "./fonts/DejaVuSans-Bold.ttf",
		},
		Pricing: Pricing{
			LaborRate:           0.35,
			TemplateCoefficient: 1.5,
		},
	}
}
