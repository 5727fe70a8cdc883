// Package logs records the results of finished games in a sqlite
// database.
package logs

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // repository assumes sqlite
)

type Repository struct {
	db *sqlx.DB

	insert *sqlx.NamedStmt
}

// Game is one finished game. Black and White name the players as
// they were configured, e.g. "minimax:3".
type Game struct {
	ID        int64     `db:"id"`
	Timestamp time.Time `db:"time"`
	Size      int       `db:"size"`
	Black     string    `db:"black"`
	White     string    `db:"white"`
	Winner    string    `db:"winner"`
	Plies     int       `db:"plies"`
	Moves     string    `db:"moves"`
}

// Record summarizes one player's results against one opponent.
type Record struct {
	Player   string `db:"player"`
	Opponent string `db:"opponent"`
	Wins     int    `db:"wins"`
	Games    int    `db:"games"`
}

func Open(db string) (*Repository, error) {
	sql, err := sqlx.Open("sqlite3", db)
	if err != nil {
		return nil, err
	}
	_, err = sql.Exec(createGameTable)
	if err != nil {
		sql.Close()
		return nil, fmt.Errorf("create game table: %w", err)
	}
	_, err = sql.Exec(createPlayerView)
	if err != nil {
		sql.Close()
		return nil, fmt.Errorf("create player_games view: %w", err)
	}

	repo := &Repository{db: sql}
	repo.insert, err = sql.PrepareNamed(insertStmt)
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("prepare: %w", err)
	}
	return repo, nil
}

func (r *Repository) InsertGame(g *Game) error {
	return r.insertGame(r.insert, g)
}

func (r *Repository) insertGame(stmt *sqlx.NamedStmt, g *Game) error {
	res, err := stmt.Exec(g)
	if err != nil {
		return err
	}
	g.ID, err = res.LastInsertId()
	return err
}

func (r *Repository) InsertGames(gs []*Game) error {
	txn, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer txn.Rollback()
	stmt := txn.NamedStmt(r.insert)
	for _, g := range gs {
		if e := r.insertGame(stmt, g); e != nil {
			return e
		}
	}
	return txn.Commit()
}

func (r *Repository) Games() ([]Game, error) {
	var out []Game
	if err := r.db.Select(&out, selectGames); err != nil {
		return nil, err
	}
	return out, nil
}

// Records returns win counts for every pairing of players, from both
// sides.
func (r *Repository) Records() ([]Record, error) {
	var out []Record
	if err := r.db.Select(&out, selectRecords); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repository) Close() {
	if r.insert != nil {
		r.insert.Close()
	}
	r.db.Close()
}
