package migrations

import "gorm.io/gorm"

func GetCoreMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2026_02_10_000000_create_tournament_tables",
			Up: func(db *gorm.DB) error {
				// Create tournaments table
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS tournaments (
						id BIGSERIAL PRIMARY KEY,
						name VARCHAR(255) NOT NULL,
						slug VARCHAR(255) UNIQUE NOT NULL,
						description TEXT,
						status VARCHAR(20) NOT NULL DEFAULT 'opened',
						current_round INT DEFAULT 0,
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						deleted_at TIMESTAMP NULL
					);
					CREATE INDEX IF NOT EXISTS idx_tournaments_deleted_at ON tournaments(deleted_at);
					CREATE INDEX IF NOT EXISTS idx_tournaments_status ON tournaments(status);
				`).Error; err != nil {
					return err
				}

				// Create players table
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS players (
						id VARCHAR(36) PRIMARY KEY,
						tournament_id BIGINT NOT NULL,
						name VARCHAR(255) NOT NULL,
						avatar TEXT,
						rating FLOAT DEFAULT 1500,
						initial_rating FLOAT DEFAULT 1500,
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						deleted_at TIMESTAMP NULL,
						FOREIGN KEY (tournament_id) REFERENCES tournaments(id) ON DELETE CASCADE
					);
					CREATE INDEX IF NOT EXISTS idx_players_deleted_at ON players(deleted_at);
					CREATE INDEX IF NOT EXISTS idx_players_tournament_id ON players(tournament_id);
					CREATE INDEX IF NOT EXISTS idx_players_rating ON players(rating);
				`).Error; err != nil {
					return err
				}

				// Create matches table
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS matches (
						id VARCHAR(20) NOT NULL,
						tournament_id BIGINT NOT NULL,
						round_number INT NOT NULL,
						team1_player1_id VARCHAR(36) NOT NULL,
						team1_player2_id VARCHAR(36) NOT NULL,
						team2_player1_id VARCHAR(36) NOT NULL,
						team2_player2_id VARCHAR(36) NOT NULL,
						team1_score INT NULL,
						team2_score INT NULL,
						rating_changes JSONB NULL,
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						deleted_at TIMESTAMP NULL,
						PRIMARY KEY (id, tournament_id),
						FOREIGN KEY (tournament_id) REFERENCES tournaments(id) ON DELETE CASCADE
					);
					CREATE INDEX IF NOT EXISTS idx_matches_deleted_at ON matches(deleted_at);
					CREATE INDEX IF NOT EXISTS idx_matches_round_number ON matches(tournament_id, round_number);
				`).Error; err != nil {
					return err
				}

				return nil
			},
			Down: func(db *gorm.DB) error {
				return db.Exec(`
					DROP TABLE IF EXISTS matches;
					DROP TABLE IF EXISTS players;
					DROP TABLE IF EXISTS tournaments;
				`).Error
			},
		},
	}
}
