package enc

// defaultWordList is the built-in vocabulary of the word codec: 256 unique
// words in alphabetical order, one per byte value. Words are short, concrete
// and phonetically distinct, which is what makes dictation over a phone line
// practical.
var defaultWordList = [256]string{
	// 0x00
	"abacus", "acrobat", "admiral", "airship",
	"albatross", "almond", "amber", "anchor",
	"antelope", "apricot", "archery", "asparagus",
	"atlas", "autumn", "avocado", "axiom",
	// 0x10
	"bagpipe", "balloon", "bamboo", "banjo",
	"barley", "basket", "beacon", "bicycle",
	"biscuit", "blanket", "blossom", "bobcat",
	"bramble", "bronze", "bucket", "butter",
	// 0x20
	"cabbage", "cactus", "camera", "canyon",
	"carpet", "cedar", "chicken", "chimney",
	"chisel", "chowder", "cinnamon", "citrus",
	"clarinet", "clover", "cobalt", "coconut",
	// 0x30
	"coffee", "comet", "compass", "copper",
	"coral", "cotton", "crayon", "cricket",
	"crystal", "cup", "cushion", "cyclone",
	"cymbal", "daffodil", "dagger", "dahlia",
	// 0x40
	"daisy", "dolphin", "domino", "donkey",
	"dragon", "drum", "dune", "eagle",
	"easel", "echo", "eclipse", "eggplant",
	"elbow", "elephant", "emerald", "engine",
	// 0x50
	"ermine", "falcon", "feather", "fiddle",
	"fjord", "flannel", "flute", "fossil",
	"fountain", "foxglove", "fudge", "galaxy",
	"garlic", "gazebo", "geyser", "ginger",
	// 0x60
	"glacier", "goblet", "gondola", "granite",
	"guitar", "hammock", "harbor", "harvest",
	"hazelnut", "helmet", "hickory", "holly",
	"horizon", "hurricane", "hyacinth", "iceberg",
	// 0x70
	"igloo", "indigo", "ingot", "iris",
	"iron", "island", "ivory", "jaguar",
	"jasmine", "jasper", "jigsaw", "juniper",
	"kayak", "kestrel", "kettle", "kiwi",
	// 0x80
	"knapsack", "ladder", "lagoon", "lantern",
	"lemon", "lighthouse", "lilac", "lobster",
	"locket", "lumber", "lyric", "magnet",
	"mahogany", "mango", "maple", "marble",
	// 0x90
	"meadow", "melon", "mineral", "mosaic",
	"mustang", "napkin", "nectar", "nickel",
	"nightingale", "nimbus", "nutmeg", "oasis",
	"obsidian", "ocean", "octopus", "olive",
	// 0xA0
	"onyx", "opal", "orchard", "osprey",
	"otter", "oxygen", "paddle", "pagoda",
	"palette", "panther", "parchment", "peacock",
	"pebble", "pelican", "penguin", "pepper",
	// 0xB0
	"piccolo", "pigeon", "pillow", "pineapple",
	"pirate", "pistachio", "planet", "plaza",
	"pocket", "pomegranate", "poplar", "porcelain",
	"prairie", "pretzel", "prism", "pudding",
	// 0xC0
	"pulley", "pumpkin", "puzzle", "python",
	"quarry", "quartz", "quill", "quilt",
	"raccoon", "radish", "raft", "rainbow",
	"raspberry", "raven", "reef", "ribbon",
	// 0xD0
	"river", "rocket", "rooster", "ruby",
	"saddle", "saffron", "salmon", "sapphire",
	"satchel", "seagull", "shamrock", "shovel",
	"sierra", "silver", "sketch", "sleigh",
	// 0xE0
	"snorkel", "sparrow", "sphinx", "spruce",
	"squirrel", "summit", "sunflower", "table",
	"tadpole", "talon", "tangerine", "teapot",
	"telescope", "tennis", "thimble", "three",
	// 0xF0
	"thunder", "tiger", "toboggan", "topaz",
	"trumpet", "tulip", "twenty", "umbrella",
	"velvet", "wolfram", "wombat", "xylophone",
	"yankee", "yogurt", "zebra", "zeppelin",
}
