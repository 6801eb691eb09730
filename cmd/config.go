package cmd

// Config carries process configuration read from the environment.
//
// StorageBackend selects where orders live: "memory" (default), "postgres"
// or "mongo". The DB* fields apply to postgres, the Mongo* fields to mongo.
type Config struct {
	HTTPPort    string
	Environment string

	StorageBackend string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	MongoURI      string
	MongoDatabase string
}
