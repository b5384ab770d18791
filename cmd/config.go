package cmd

// Config carries every externally supplied setting. Values arrive as strings
// from the environment; numeric fields are parsed at load time.
type Config struct {
	HTTPPort    string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSslMode   string
	RabbitMQURL string
	WorkerCount int
}
