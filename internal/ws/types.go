package ws

const (
	// client - server
	MsgPing = "ping"

	// server - client
	MsgHello               = "hello"
	MsgTileOn              = "tile_on"
	MsgTileOff             = "tile_off"
	MsgInputFlash          = "input_flash"
	MsgScore               = "score"
	MsgHighScore           = "high_score"
	MsgGameOver            = "game_over"
	MsgAchievementUnlocked = "achievement_unlocked"
)
