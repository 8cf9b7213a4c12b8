// cmd/outreachctl/main.go
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/outreachhub/outreachhub/internal/auth"
	"github.com/outreachhub/outreachhub/internal/config"
	"github.com/outreachhub/outreachhub/internal/model"
	"github.com/outreachhub/outreachhub/internal/repository"
)

const version = "0.3.0"

var (
	dbConnString string
	verbose      bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbConnString, "db", "d", "", "Database connection string (defaults to environment configuration)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	createUserCmd.Flags().StringVar(&userOrg, "org", "", "Organization name the user belongs to")
	createUserCmd.Flags().IntVar(&userRole, "role", int(model.RoleOwner), "Role ordinal (0 owner, 1 admin, 2 member)")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(createOrgCmd)
	rootCmd.AddCommand(createUserCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "outreachctl",
	Short: "outreachctl manages an OutreachHub deployment",
	Long:  `outreachctl runs schema migrations and seeds organizations and staff accounts.`,
}

func connString() string {
	if dbConnString != "" {
		return dbConnString
	}
	return config.Load().DSN()
}

// openDB verifies connectivity with database/sql before handing the
// connection to GORM; a bad DSN fails fast with a readable error.
func openDB() (*gorm.DB, error) {
	dsn := connString()

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	sqlDB.Close()

	logLevel := logger.Warn
	if verbose {
		logLevel = logger.Info
	}
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := openDB()
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		err = db.AutoMigrate(
			&model.Organization{},
			&model.User{},
			&model.Individual{},
			&model.Partner{},
			&model.Tag{},
			&model.Resource{},
			&model.Event{},
		)
		if err != nil {
			log.Fatalf("Failed to migrate schema: %v", err)
		}

		fmt.Println("Schema migrated successfully")
	},
}

var createOrgCmd = &cobra.Command{
	Use:   "create-org [name]",
	Short: "Create an organization",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		db, err := openDB()
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		repos := repository.NewRepos(db)
		org := &model.Organization{Name: args[0]}
		if err := repos.Organizations.Create(context.Background(), org); err != nil {
			log.Fatalf("Failed to create organization: %v", err)
		}

		fmt.Printf("Created organization %q (%s)\n", org.Name, org.ID)
	},
}

var (
	userOrg  string
	userRole int
)

var createUserCmd = &cobra.Command{
	Use:   "create-user [username] [password] [email] [first] [last]",
	Short: "Create a staff account",
	Long:  `Create a staff account in an existing organization. The printed token authenticates API requests.`,
	Args:  cobra.ExactArgs(5),
	Run: func(cmd *cobra.Command, args []string) {
		if userOrg == "" {
			log.Fatal("--org is required")
		}
		role := model.Role(userRole)
		if !role.Valid() {
			log.Fatalf("Invalid role %d", userRole)
		}

		db, err := openDB()
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		var org model.Organization
		if err := db.Where("name = ?", userOrg).First(&org).Error; err != nil {
			log.Fatalf("Failed to find organization %q: %v", userOrg, err)
		}

		hasher := auth.NewPasswordHasher()
		hashed, err := hasher.Hash(args[1])
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		token, err := auth.NewCapabilityToken()
		if err != nil {
			log.Fatalf("Failed to generate token: %v", err)
		}

		repos := repository.NewRepos(db)
		user := &model.User{
			Hash:           token,
			Username:       args[0],
			Password:       hashed,
			Email:          args[2],
			FirstName:      args[3],
			LastName:       args[4],
			Role:           role,
			OrganizationID: org.ID,
		}
		if err := repos.Users.Create(context.Background(), user); err != nil {
			log.Fatalf("Failed to create user: %v", err)
		}

		fmt.Printf("Created user %q in %q\nToken: %s\n", user.Username, org.Name, user.Hash)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the outreachctl version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("outreachctl version %s\n", version)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
