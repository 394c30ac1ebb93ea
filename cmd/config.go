package cmd

// Config carries the process configuration read from the environment.
// DBDriver selects the storage backend: "postgres" for the usual server
// deployment, "sqlite" for a single-terminal install without a database
// server. The DB* fields apply to postgres, SQLitePath to sqlite.
type Config struct {
	HTTPPort   string
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	SQLitePath string
}
