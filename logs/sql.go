package logs

const createGameTable = `
CREATE TABLE IF NOT EXISTS games (
  id integer primary key autoincrement,
  time datetime not null,
  size int not null,
  black varchar not null,
  white varchar not null,
  winner string not null,
  plies int not null,
  moves string not null
)`

const createPlayerView = `
CREATE VIEW IF NOT EXISTS player_games (
  id, player, opponent, color, win, size, plies
) AS
SELECT id, black, white, 'black',
       CASE winner WHEN 'black' THEN 'win' ELSE 'lose' END,
       size, plies
 FROM games
UNION
SELECT id, white, black, 'white',
       CASE winner WHEN 'white' THEN 'win' ELSE 'lose' END,
       size, plies
 FROM games
`

const insertStmt = `
INSERT INTO games (time, size, black, white, winner, plies, moves)
VALUES (:time, :size, :black, :white, :winner, :plies, :moves)
`

const selectGames = `
SELECT id, time, size, black, white, winner, plies, moves
FROM games ORDER BY id
`

const selectRecords = `
SELECT player, opponent,
       SUM(CASE win WHEN 'win' THEN 1 ELSE 0 END) AS wins,
       COUNT(*) AS games
FROM player_games
GROUP BY player, opponent
ORDER BY player, opponent
`
