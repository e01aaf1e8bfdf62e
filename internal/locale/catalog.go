package locale

import "fmt"

// MessageID identifies a translated string.
type MessageID string

// Question titles.
const (
	AskFirstLevel       MessageID = "ask_first_level"
	AskFirstLevelName   MessageID = "ask_first_level_name"
	AskSelectFirstLevel MessageID = "ask_select_first_level"
	AskSecondLevel      MessageID = "ask_second_level"
	AskSecondLevelName  MessageID = "ask_second_level_name"
	AskTemplateFiles    MessageID = "ask_template_files"
	AskAPIFiles         MessageID = "ask_api_files"
)

// Status lines and UI strings.
const (
	FirstLevelCreated  MessageID = "first_level_created"
	SecondLevelCreated MessageID = "second_level_created"
	DirCreated         MessageID = "dir_created"
	APIDirCreated      MessageID = "api_dir_created"
	CreatingTemplates  MessageID = "creating_templates"
	TemplatesCreated   MessageID = "templates_created"
	TemplatesFailed    MessageID = "templates_failed"
	CreatingAPIFiles   MessageID = "creating_api_files"
	APIFilesCreated    MessageID = "api_files_created"
	APIFilesFailed     MessageID = "api_files_failed"
	SessionFailed      MessageID = "session_failed"
	Yes                MessageID = "yes"
	No                 MessageID = "no"
	InvalidConfirm     MessageID = "invalid_confirm"
	InvalidChoice      MessageID = "invalid_choice"
)

// messages maps locale -> message ID -> format string.
var messages = map[Locale]map[MessageID]string{
	Chinese: {
		AskFirstLevel:       "是否需要一级目录？",
		AskFirstLevelName:   "请输入一级目录名称：",
		AskSelectFirstLevel: "请选择 src/views 下的一个文件：",
		AskSecondLevel:      "是否需要创建二级目录？",
		AskSecondLevelName:  "请输入二级目录名称：",
		AskTemplateFiles:    "是否需要创建模板文件 (index.vue, columns.tsx)？",
		AskAPIFiles:         "是否需要创建 API 文件 (index.ts, model.d.ts)？",

		FirstLevelCreated:  "一级目录已创建：%s",
		SecondLevelCreated: "二级目录已创建：%s",
		DirCreated:         "%s 文件夹已创建：%s",
		APIDirCreated:      "API 目录已创建：%s",
		CreatingTemplates:  "正在创建模板文件...",
		TemplatesCreated:   "模板文件创建成功",
		TemplatesFailed:    "模板文件创建失败",
		CreatingAPIFiles:   "正在创建 API 文件...",
		APIFilesCreated:    "API 文件创建成功",
		APIFilesFailed:     "API 文件创建失败",
		SessionFailed:      "操作被中断或发生错误: %v",
		Yes:                "是",
		No:                 "否",
		InvalidConfirm:     "请输入 y 或 n",
		InvalidChoice:      "请输入列表中的名称或序号",
	},
	English: {
		AskFirstLevel:       "Do you need a first-level directory?",
		AskFirstLevelName:   "Enter the first-level directory name:",
		AskSelectFirstLevel: "Select an entry under src/views:",
		AskSecondLevel:      "Create a second-level directory?",
		AskSecondLevelName:  "Enter the second-level directory name:",
		AskTemplateFiles:    "Create template files (index.vue, columns.tsx)?",
		AskAPIFiles:         "Create API files (index.ts, model.d.ts)?",

		FirstLevelCreated:  "First-level directory created: %s",
		SecondLevelCreated: "Second-level directory created: %s",
		DirCreated:         "%s folder created: %s",
		APIDirCreated:      "API directory created: %s",
		CreatingTemplates:  "Creating template files...",
		TemplatesCreated:   "Template files created",
		TemplatesFailed:    "Failed to create template files",
		CreatingAPIFiles:   "Creating API files...",
		APIFilesCreated:    "API files created",
		APIFilesFailed:     "Failed to create API files",
		SessionFailed:      "Operation interrupted or failed: %v",
		Yes:                "Yes",
		No:                 "No",
		InvalidConfirm:     "Please answer y or n",
		InvalidChoice:      "Enter a name or number from the list",
	},
}

// Catalog returns translated strings for one locale, falling back to English.
type Catalog struct {
	locale Locale
}

// NewCatalog creates a Catalog for the given locale.
func NewCatalog(l Locale) *Catalog {
	if _, ok := messages[l]; !ok {
		l = English
	}
	return &Catalog{locale: l}
}

// Locale returns the catalog's locale.
func (c *Catalog) Locale() Locale {
	return c.locale
}

// Text returns the translated string for id. Unknown IDs return the ID itself.
func (c *Catalog) Text(id MessageID) string {
	if s, ok := messages[c.locale][id]; ok {
		return s
	}
	if s, ok := messages[English][id]; ok {
		return s
	}
	return string(id)
}

// Format returns the translated string for id formatted with args.
func (c *Catalog) Format(id MessageID, args ...any) string {
	return fmt.Sprintf(c.Text(id), args...)
}
