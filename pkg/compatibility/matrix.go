package compatibility

// pairKey builds the symmetric matrix key for two type codes. Codes are
// ordered so that score(a,b) and score(b,a) hit the same entry.
func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

// pairMatrix is the fixed pairwise compatibility matrix, 0-100. Pairs
// absent from the matrix are undefined and excluded from aggregation.
var pairMatrix = map[string]int{
	pairKey("reformer", "reformer"):           70,
	pairKey("reformer", "helper"):             75,
	pairKey("reformer", "achiever"):           70,
	pairKey("reformer", "individualist"):      65,
	pairKey("reformer", "investigator"):       72,
	pairKey("reformer", "loyalist"):           74,
	pairKey("reformer", "enthusiast"):         62,
	pairKey("reformer", "challenger"):         64,
	pairKey("reformer", "peacemaker"):         78,
	pairKey("helper", "helper"):               72,
	pairKey("helper", "achiever"):             76,
	pairKey("helper", "individualist"):        74,
	pairKey("helper", "investigator"):         60,
	pairKey("helper", "loyalist"):             75,
	pairKey("helper", "enthusiast"):           73,
	pairKey("helper", "challenger"):           77,
	pairKey("helper", "peacemaker"):           80,
	pairKey("achiever", "achiever"):           68,
	pairKey("achiever", "individualist"):      63,
	pairKey("achiever", "investigator"):       66,
	pairKey("achiever", "loyalist"):           70,
	pairKey("achiever", "enthusiast"):         76,
	pairKey("achiever", "challenger"):         72,
	pairKey("achiever", "peacemaker"):         74,
	pairKey("individualist", "individualist"): 60,
	pairKey("individualist", "investigator"):  75,
	pairKey("individualist", "loyalist"):      64,
	pairKey("individualist", "enthusiast"):    66,
	pairKey("individualist", "challenger"):    68,
	pairKey("individualist", "peacemaker"):    77,
	pairKey("investigator", "investigator"):   70,
	pairKey("investigator", "loyalist"):       72,
	pairKey("investigator", "enthusiast"):     65,
	pairKey("investigator", "challenger"):     70,
	pairKey("investigator", "peacemaker"):     73,
	pairKey("loyalist", "loyalist"):           66,
	pairKey("loyalist", "enthusiast"):         64,
	pairKey("loyalist", "challenger"):         68,
	pairKey("loyalist", "peacemaker"):         79,
	pairKey("enthusiast", "enthusiast"):       72,
	pairKey("enthusiast", "challenger"):       74,
	pairKey("enthusiast", "peacemaker"):       75,
	pairKey("challenger", "challenger"):       55,
	pairKey("challenger", "peacemaker"):       76,
	pairKey("peacemaker", "peacemaker"):       69,
}
