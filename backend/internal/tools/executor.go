package tools

// The executor is split into focused files by tool category:
//
// Core Executor:
// - executor_core.go: executor types, registry validation, and handler dispatch
//
// Tool Implementations by Category:
// - project_executor.go: project tools (get_projects, create_project, get_project_info, update_project, archive_project)
// - task_executor.go: task tools (create_task, get_tasks, toggle_task, update_task, delete_task, assignment, get_user_tasks)
// - idea_executor.go: idea pool tools (add_idea, get_ideas, delete_idea, mark_idea_used)
// - note_executor.go: note tools (add/get project and task notes)
// - memory_executor.go: user memory tools (save_memory, get_user_memories, delete_memory)
// - member_executor.go: guild member lookup tools (lookup_guild_member, get_guild_members)
// - github_executor.go: GitHub tools (list_files, read_file, branches, PRs, update_file) + the API client
// - web_executor.go: fetch_webpage and page text extraction
//
// Tool declarations live in the matching *_tools.go files and are collected
// by AllTools() in tools.go.
