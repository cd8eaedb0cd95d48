package checks

import (
	"context"
	"database/sql"
	"fmt"
	"net"

	"hellodock/internal/config"
	"hellodock/internal/domain"

	"github.com/go-sql-driver/mysql"
)

// DatabaseCheck pings the MySQL server described by the DB_* settings.
type DatabaseCheck struct {
	config *config.Config
}

// NewDatabaseCheck creates a new DatabaseCheck
func NewDatabaseCheck(cfg *config.Config) *DatabaseCheck {
	return &DatabaseCheck{config: cfg}
}

func (c *DatabaseCheck) Name() string  { return "database" }
func (c *DatabaseCheck) Title() string { return "Database connection" }

// dsn builds the driver DSN. The password never appears in result details.
func (c *DatabaseCheck) dsn() (string, string) {
	db := c.config.Database
	addr := net.JoinHostPort(db.Host, db.Port)

	mc := mysql.NewConfig()
	mc.User = db.User
	mc.Passwd = db.Password
	mc.Net = "tcp"
	mc.Addr = addr
	mc.DBName = db.Name
	mc.Timeout = db.Timeout
	return mc.FormatDSN(), addr
}

func (c *DatabaseCheck) Run(ctx context.Context) domain.CheckResult {
	dsn, addr := c.dsn()
	details := []domain.Detail{
		{Text: "host: " + addr},
		{Text: "user: " + c.config.Database.User},
	}
	if name := c.config.Database.Name; name != "" {
		details = append(details, domain.Detail{Text: "database: " + name})
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return domain.Failed(fmt.Sprintf("failed to open database: %v", err), details...)
	}
	defer db.Close()

	timeout := c.config.Database.Timeout
	if timeout <= 0 {
		timeout = config.DefaultDatabaseTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return domain.Failed(fmt.Sprintf("failed to ping database server: %v", err), details...)
	}
	return domain.Passed("connected to "+addr, details...)
}
