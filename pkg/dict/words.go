package dict

// builtinWords is the bundled English word list, bucketed by word length.
// Entries are already lowercase; Builtin clones the buckets before handing
// them out.
var builtinWords = map[int][]string{
	4: {
		"bear", "blue", "bold", "calm", "crab", "crow", "cyan", "deer", "duck",
		"epic", "frog", "giga", "gray", "hawk", "huge", "jade", "kind", "kiwi",
		"lake", "lion", "lynx", "mega", "mini", "nano", "neon", "newt", "nice",
		"orca", "puma", "rose", "ruby", "sage", "seal", "swan", "sync", "tidy",
		"time", "tiny", "tuna", "vast", "warm", "wasp", "wise", "wolf", "zebu",
	},
	5: {
		"agile", "amber", "azure", "bison", "black", "brave", "brown", "camel",
		"cobra", "coral", "crane", "crisp", "cyber", "dingo", "eager", "eagle",
		"ebony", "fancy", "finch", "gecko", "giant", "goose", "grand", "green",
		"happy", "heron", "hippo", "horse", "hyena", "hyper", "ivory", "jolly",
		"koala", "large", "lemur", "llama", "lunar", "macaw", "manta", "micro",
		"moose", "noble", "ocean", "okapi", "otter", "panda", "pearl", "polar",
		"proud", "quail", "quick", "raven", "rhino", "river", "robin", "royal",
		"rural", "savvy", "shark", "sharp", "silly", "skunk", "sleek", "small",
		"solar", "squid", "sunny", "super", "swift", "tapir", "tiger", "trout",
		"ultra", "urban", "viper", "vivid", "whale", "white", "witty", "zebra",
		"zesty", "zippy",
	},
	6: {
		"alpaca", "alpine", "arctic", "ardent", "astral", "atomic", "badger",
		"beaver", "beetle", "bobcat", "bright", "bronze", "canary", "chrome",
		"clever", "condor", "copper", "cosmic", "cougar", "coyote", "daring",
		"desert", "diving", "falcon", "ferret", "fierce", "flying", "forest",
		"frosty", "gentle", "gerbil", "golden", "gritty", "heroic", "honest",
		"humble", "iguana", "impala", "indigo", "island", "jackal", "jaguar",
		"little", "lively", "lizard", "magpie", "marlin", "medium", "mighty",
		"modern", "monkey", "ocelot", "orange", "oriole", "osprey", "oyster",
		"parrot", "petite", "plasma", "purple", "python", "quirky", "quokka",
		"rabbit", "racing", "robust", "salmon", "serene", "silver", "smooth",
		"spider", "strong", "subtle", "toucan", "trusty", "tundra", "turkey",
		"turtle", "unique", "valley", "violet", "walrus", "weasel", "wombat",
		"worthy", "xxxxxx", "yellow",
	},
	7: {
		"ancient", "beaming", "blazing", "buffalo", "caribou", "cheetah",
		"coastal", "compact", "cricket", "crimson", "curious", "dancing",
		"dashing", "dolphin", "dynamic", "elegant", "emerald", "firefly",
		"flowing", "focused", "gallant", "gazelle", "giraffe", "gliding",
		"glowing", "gorilla", "hamster", "hunting", "immense", "jumping",
		"kestrel", "ladybug", "leaping", "leopard", "lobster", "lowland",
		"magenta", "mammoth", "manatee", "massive", "meerkat", "mindful",
		"narwhal", "octopus", "ostrich", "panther", "peacock", "pelican",
		"penguin", "phoenix", "playful", "prairie", "pulsing", "quantum",
		"raccoon", "radiant", "rooster", "running", "savanna", "seagull",
		"shining", "sincere", "singing", "soaring", "sparrow", "stellar",
		"sublime", "supreme", "surging", "titanic", "unicorn", "valiant",
		"vibrant", "warthog", "zealous", "zooming",
	},
	8: {
		"antelope", "artistic", "balanced", "cardinal", "charging", "charming",
		"cheerful", "chipmunk", "climbing", "colossal", "creative", "dazzling",
		"diligent", "electric", "elephant", "enormous", "fearless", "flamingo",
		"flexible", "floating", "friendly", "galactic", "generous", "gleaming",
		"glorious", "graceful", "hedgehog", "highland", "hovering", "inspired",
		"intrepid", "kangaroo", "luminous", "majestic", "meteoric", "mongoose",
		"mountain", "mystical", "peaceful", "platypus", "polished", "powerful",
		"precious", "pristine", "prowling", "reindeer", "resolute", "sapphire",
		"scorpion", "seahorse", "skillful", "spinning", "spirited", "splendid",
		"squirrel", "stalking", "stallion", "stalwart", "starfish", "stingray",
		"stunning", "swimming", "tactical", "talented", "thriving", "titanium",
		"tranquil", "tropical", "tumbling", "ultimate", "vaulting", "vigorous",
		"volcanic", "whirling", "youthful",
	},
	9: {
		"ambitious", "armadillo", "authentic", "barracuda", "brilliant",
		"butterfly", "cassowary", "celestial", "chameleon", "confident",
		"cormorant", "crocodile", "dragonfly", "enchanted", "energetic",
		"exploring", "jellyfish", "legendary", "marvelous", "orangutan",
		"porcupine", "radiating", "resilient", "sparkling", "sprinting",
		"steadfast", "tenacious", "versatile", "wandering", "whimsical",
		"wonderful", "yellowfin",
	},
	10: {
		"chinchilla", "courageous", "determined", "equatorial", "flickering",
		"harmonious", "incredible", "innovative", "kingfisher", "optimistic",
		"persistent", "refreshing", "remarkable", "salamander", "thoughtful",
		"woodpecker",
	},
}
