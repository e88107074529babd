package mcpserver

// IndexFormatContract documents the generated block format for MCP clients.
const IndexFormatContract = `# Raido generated index blocks

Raido maintains one auto-generated block per folder note, delimited by fixed
sentinel lines. Everything between the sentinels is overwritten on every
regeneration; never edit it by hand.

## Requesting a block

Type the bare trigger token on its own line inside a folder note:

    %% index %%

An Index block stops a parent's tree at this folder (the parent links here
instead of flattening this folder's contents). A Subindex block
(` + "`%% subindex %%`" + `) also renders its own tree, but parents list straight
through it.

## Generated form

    %% Begin Index %%
    - [[Note]]
    - **[[Subfolder]]**
    	- [[Child Note]]
    	- other-file.pdf

    %% End Index %%

- One bullet per entry; subfolders are bold, linked when they have a folder
  note of their own.
- Links are wiki-style or percent-encoded relative paths, per settings.
- Indentation is one tab or a configured number of spaces per depth level.
- A blank line always precedes the end sentinel.

## Placement rules

- The token must sit in a folder note (a document bound to its folder by the
  configured naming convention). Anywhere else it is replaced with an error
  comment.
- Vault-root indexes are rejected.
- Only the first token or block per document is honored.
`
