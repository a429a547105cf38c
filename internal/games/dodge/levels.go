package dodge

// BaseObstacles is added to the level number to get the obstacle count.
const BaseObstacles = 5

// ObstacleCount returns how many obstacles a level spawns.
func ObstacleCount(level int) int {
	return level + BaseObstacles
}

// TargetsRequired returns how many targets a level spawns and how many must
// be collected to clear it. The two are the same number by construction.
func TargetsRequired(level int) int {
	return level
}
