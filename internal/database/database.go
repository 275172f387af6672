package database

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gocql/gocql"
	"github.com/redis/go-redis/v9"
)

// --- Variables Globales ---
var (
	Redis  *redis.Client  // nil si REDIS_HOST absent → snapshot et alertes désactivés
	Scylla *gocql.Session // nil si SCYLLA_HOSTS absent → archivage désactivé
)

// ConnectDatabases initialise les backends. Redis porte le snapshot du
// store, le rate limiting et le pub/sub des alertes ; ScyllaDB n'est
// qu'une archive best-effort des registres append-only. Les deux sont
// optionnels : le cœur fonctionne entièrement en mémoire sans eux.
func ConnectDatabases() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	connectRedis(ctx)
	connectScylla()
}

// =============================================
// REDIS
// =============================================
func connectRedis(ctx context.Context) {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		log.Println("⚠️  REDIS_HOST non configuré — snapshot, rate limiting et alertes live désactivés")
		return
	}

	Redis = redis.NewClient(&redis.Options{
		Addr:     host,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := Redis.Ping(ctx).Err(); err != nil {
		log.Fatal("❌ Erreur connexion Redis:", err)
	}
	log.Println("✅ Connecté à Redis")
}

// =============================================
// SCYLLA DB (archive des registres)
// =============================================
func connectScylla() {
	hosts := os.Getenv("SCYLLA_HOSTS")
	if hosts == "" {
		log.Println("⚠️  SCYLLA_HOSTS non configuré — archivage des registres désactivé")
		return
	}

	cluster := gocql.NewCluster(strings.Split(hosts, ",")...)
	cluster.Keyspace = os.Getenv("SCYLLA_KEYSPACE")
	if cluster.Keyspace == "" {
		cluster.Keyspace = "ks_retail"
	}
	cluster.Consistency = gocql.Quorum
	cluster.Timeout = 5 * time.Second
	cluster.ReconnectInterval = 1 * time.Second
	if user := os.Getenv("SCYLLA_ROLE"); user != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: user,
			Password: os.Getenv("SCYLLA_PASSWORD"),
		}
	}
	cluster.PoolConfig.HostSelectionPolicy = gocql.TokenAwareHostPolicy(gocql.RoundRobinHostPolicy())

	session, err := cluster.CreateSession()
	if err != nil {
		// L'archive n'est jamais bloquante : on continue sans elle
		log.Printf("⚠️  Connexion ScyllaDB impossible (%v) — archivage désactivé", err)
		return
	}

	Scylla = session
	log.Printf("✅ Connecté à ScyllaDB (keyspace %s)", cluster.Keyspace)
}

// CloseDatabases ferme proprement les connexions ouvertes.
func CloseDatabases() {
	if Scylla != nil {
		Scylla.Close()
		log.Println("🔌 Session ScyllaDB fermée")
	}
	if Redis != nil {
		_ = Redis.Close()
		log.Println("🔌 Connexion Redis fermée")
	}
}
