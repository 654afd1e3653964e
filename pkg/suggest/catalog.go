package suggest

// purposeKeywords maps free-form purpose words to catalog categories.
// Verbs like "edit" stay out of the table so that phrases such as "edit
// videos" resolve through the noun.
var purposeKeywords = map[string]string{
	"browser":  "browser",
	"browsing": "browser",
	"web":      "browser",
	"internet": "browser",

	"editor": "editor",
	"text":   "editor",

	"ide":         "ide",
	"code":        "ide",
	"coding":      "ide",
	"programming": "ide",

	"terminal": "terminal",
	"shell":    "terminal",
	"console":  "terminal",

	"media":  "media",
	"player": "media",
	"movie":  "media",
	"movies": "media",
	"music":  "media",
	"listen": "media",

	"office":       "office",
	"document":     "office",
	"documents":    "office",
	"spreadsheet":  "office",
	"presentation": "office",
	"productivity": "office",

	"mail":  "mail",
	"email": "mail",

	"chat":          "chat",
	"messaging":     "chat",
	"messenger":     "chat",
	"communication": "chat",

	"image":     "graphics",
	"images":    "graphics",
	"photo":     "graphics",
	"photos":    "graphics",
	"picture":   "graphics",
	"pictures":  "graphics",
	"graphics":  "graphics",
	"drawing":   "graphics",
	"paint":     "graphics",
	"design":    "graphics",
	"photoshop": "graphics",

	"audio": "audio",
	"sound": "audio",

	"video":     "video",
	"videos":    "video",
	"film":      "video",
	"streaming": "video",

	"game":   "gaming",
	"games":  "gaming",
	"gaming": "gaming",
	"play":   "gaming",

	"system":    "utility",
	"monitor":   "utility",
	"utility":   "utility",
	"utilities": "utility",
	"tool":      "utility",
	"tools":     "utility",

	"development": "development",
	"develop":     "development",
	"devops":      "development",
	"container":   "development",
	"containers":  "development",
}

// builtinEntries is the curated catalog behind the suggest verb. Flatpak
// overrides use application IDs since that is what the flatpak CLI accepts.
var builtinEntries = []Entry{
	// Browsers
	{Canonical: "firefox", Category: "browser", Blurb: "Mozilla's flagship web browser",
		Sources: map[string]string{"flatpak": "org.mozilla.firefox"}},
	{Canonical: "chromium", Category: "browser", Blurb: "Open-source base of Chrome",
		Sources: map[string]string{"apt": "chromium-browser", "flatpak": "org.chromium.Chromium"}},
	{Canonical: "brave", Category: "browser", Blurb: "Privacy-focused Chromium browser",
		Sources: map[string]string{"aur": "brave-bin", "flatpak": "com.brave.Browser"}},
	{Canonical: "vivaldi", Category: "browser", Blurb: "Feature-rich customizable browser",
		Sources: map[string]string{"flatpak": "com.vivaldi.Vivaldi"}},
	{Canonical: "google-chrome", Category: "browser", Blurb: "Google's proprietary browser",
		Sources: map[string]string{"apt": "google-chrome-stable", "flatpak": "com.google.Chrome"}},

	// Editors
	{Canonical: "neovim", Category: "editor", Blurb: "Hyperextensible Vim-based editor",
		Sources: map[string]string{"flatpak": "io.neovim.nvim"}},
	{Canonical: "vim", Category: "editor", Blurb: "The ubiquitous modal text editor",
		Sources: map[string]string{"dnf": "vim-enhanced"}},
	{Canonical: "emacs", Category: "editor", Blurb: "The extensible, self-documenting editor",
		Sources: map[string]string{"flatpak": "org.gnu.emacs"}},
	{Canonical: "micro", Category: "editor", Blurb: "Modern terminal-based text editor"},
	{Canonical: "kate", Category: "editor", Blurb: "KDE's advanced text editor",
		Sources: map[string]string{"flatpak": "org.kde.kate"}},

	// IDEs
	{Canonical: "vscode", Category: "ide", Blurb: "Microsoft's extensible code editor",
		Sources: map[string]string{"pacman": "code", "apt": "code", "dnf": "code", "snap": "code",
			"aur": "visual-studio-code-bin", "flatpak": "com.visualstudio.code"}},
	{Canonical: "intellij-idea", Category: "ide", Blurb: "JetBrains Java and Kotlin IDE",
		Sources: map[string]string{"pacman": "intellij-idea-community-edition",
			"snap": "intellij-idea-community", "flatpak": "com.jetbrains.IntelliJ-IDEA-Community"}},
	{Canonical: "sublime-text", Category: "ide", Blurb: "Fast proprietary text editor",
		Sources: map[string]string{"aur": "sublime-text-4", "flatpak": "com.sublimetext.three"}},
	{Canonical: "android-studio", Category: "ide", Blurb: "Google's Android IDE",
		Sources: map[string]string{"flatpak": "com.google.AndroidStudio"}},

	// Terminals
	{Canonical: "alacritty", Category: "terminal", Blurb: "GPU-accelerated terminal emulator"},
	{Canonical: "kitty", Category: "terminal", Blurb: "Fast, feature-rich GPU-based terminal"},
	{Canonical: "wezterm", Category: "terminal", Blurb: "GPU-accelerated terminal and multiplexer",
		Sources: map[string]string{"flatpak": "org.wezfurlong.wezterm"}},
	{Canonical: "tmux", Category: "terminal", Blurb: "Terminal multiplexer"},

	// Media players
	{Canonical: "vlc", Category: "media", Blurb: "Plays nearly every media format",
		Sources: map[string]string{"flatpak": "org.videolan.VLC"}},
	{Canonical: "mpv", Category: "media", Blurb: "Minimal command-line media player",
		Sources: map[string]string{"flatpak": "io.mpv.Mpv"}},
	{Canonical: "spotify", Category: "media", Blurb: "Streaming music client",
		Sources: map[string]string{"flatpak": "com.spotify.Client"}},
	{Canonical: "celluloid", Category: "media", Blurb: "GTK frontend for mpv",
		Sources: map[string]string{"flatpak": "io.github.celluloid_player.Celluloid"}},
	{Canonical: "rhythmbox", Category: "media", Blurb: "GNOME music player",
		Sources: map[string]string{"flatpak": "org.gnome.Rhythmbox3"}},

	// Office
	{Canonical: "libreoffice", Category: "office", Blurb: "Full-featured office suite",
		Sources: map[string]string{"pacman": "libreoffice-fresh", "flatpak": "org.libreoffice.LibreOffice"}},
	{Canonical: "onlyoffice", Category: "office", Blurb: "Office suite with strong MS format support",
		Sources: map[string]string{"aur": "onlyoffice-bin", "flatpak": "org.onlyoffice.desktopeditors"}},
	{Canonical: "calligra", Category: "office", Blurb: "KDE office and graphics suite",
		Sources: map[string]string{"flatpak": "org.kde.calligra"}},

	// Mail
	{Canonical: "thunderbird", Category: "mail", Blurb: "Mozilla's desktop email client",
		Sources: map[string]string{"flatpak": "org.mozilla.Thunderbird"}},
	{Canonical: "evolution", Category: "mail", Blurb: "GNOME mail and calendar",
		Sources: map[string]string{"flatpak": "org.gnome.Evolution"}},
	{Canonical: "geary", Category: "mail", Blurb: "Lightweight GNOME email client",
		Sources: map[string]string{"flatpak": "org.gnome.Geary"}},

	// Chat
	{Canonical: "discord", Category: "chat", Blurb: "Voice, video and text chat",
		Sources: map[string]string{"flatpak": "com.discordapp.Discord"}},
	{Canonical: "telegram", Category: "chat", Blurb: "Telegram desktop messenger",
		Sources: map[string]string{"pacman": "telegram-desktop", "apt": "telegram-desktop",
			"snap": "telegram-desktop", "flatpak": "org.telegram.desktop"}},
	{Canonical: "signal", Category: "chat", Blurb: "Private messenger desktop client",
		Sources: map[string]string{"pacman": "signal-desktop", "apt": "signal-desktop",
			"snap": "signal-desktop", "flatpak": "org.signal.Signal"}},
	{Canonical: "slack", Category: "chat", Blurb: "Team messaging client",
		Sources: map[string]string{"aur": "slack-desktop", "flatpak": "com.slack.Slack"}},
	{Canonical: "element", Category: "chat", Blurb: "Matrix collaboration client",
		Sources: map[string]string{"pacman": "element-desktop", "flatpak": "im.riot.Riot"}},

	// Graphics
	{Canonical: "gimp", Category: "graphics", Blurb: "GNU image manipulation program",
		Sources: map[string]string{"flatpak": "org.gimp.GIMP"}},
	{Canonical: "krita", Category: "graphics", Blurb: "Digital painting studio",
		Sources: map[string]string{"flatpak": "org.kde.krita"}},
	{Canonical: "inkscape", Category: "graphics", Blurb: "Vector graphics editor",
		Sources: map[string]string{"flatpak": "org.inkscape.Inkscape"}},
	{Canonical: "darktable", Category: "graphics", Blurb: "Photography workflow and RAW developer",
		Sources: map[string]string{"flatpak": "org.darktable.Darktable"}},

	// Audio
	{Canonical: "audacity", Category: "audio", Blurb: "Multi-track audio editor",
		Sources: map[string]string{"flatpak": "org.audacityteam.Audacity"}},
	{Canonical: "ardour", Category: "audio", Blurb: "Digital audio workstation",
		Sources: map[string]string{"flatpak": "org.ardour.Ardour"}},
	{Canonical: "lmms", Category: "audio", Blurb: "Music production studio",
		Sources: map[string]string{"flatpak": "io.lmms.LMMS"}},

	// Video
	{Canonical: "kdenlive", Category: "video", Blurb: "KDE's non-linear video editor",
		Sources: map[string]string{"flatpak": "org.kde.kdenlive"}},
	{Canonical: "shotcut", Category: "video", Blurb: "Cross-platform video editor",
		Sources: map[string]string{"flatpak": "org.shotcut.Shotcut"}},
	{Canonical: "obs-studio", Category: "video", Blurb: "Screen recording and live streaming",
		Sources: map[string]string{"flatpak": "com.obsproject.Studio"}},
	{Canonical: "openshot", Category: "video", Blurb: "Simple drag-and-drop video editor",
		Sources: map[string]string{"flatpak": "org.openshot.OpenShot"}},

	// Gaming
	{Canonical: "steam", Category: "gaming", Blurb: "Valve's game store and launcher",
		Sources: map[string]string{"flatpak": "com.valvesoftware.Steam"}},
	{Canonical: "lutris", Category: "gaming", Blurb: "Open gaming platform for Linux",
		Sources: map[string]string{"flatpak": "net.lutris.Lutris"}},
	{Canonical: "wine", Category: "gaming", Blurb: "Runs Windows applications on Linux"},
	{Canonical: "retroarch", Category: "gaming", Blurb: "Frontend for game emulators",
		Sources: map[string]string{"flatpak": "org.libretro.RetroArch"}},

	// Utilities
	{Canonical: "htop", Category: "utility", Blurb: "Interactive process viewer"},
	{Canonical: "btop", Category: "utility", Blurb: "Resource monitor with graphs"},
	{Canonical: "gparted", Category: "utility", Blurb: "Partition editor"},
	{Canonical: "timeshift", Category: "utility", Blurb: "System restore tool"},

	// Development
	{Canonical: "git", Category: "development", Blurb: "Distributed version control"},
	{Canonical: "docker", Category: "development", Blurb: "Container runtime and tooling",
		Sources: map[string]string{"apt": "docker.io"}},
	{Canonical: "nodejs", Category: "development", Blurb: "JavaScript runtime",
		Sources: map[string]string{"snap": "node"}},
}
