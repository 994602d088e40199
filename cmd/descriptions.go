package cmd

const listLongDescription = `List notebooks with their cell statistics: total cells, code and markup
counts and source lines per notebook, plus a totals row.`

const applyLongDescription = `Apply a scripted batch of structural edits to one or more notebooks.

The script is a YAML file with an ordered list of operations:

  ops:
    - op: join
      index: 0
      direction: below
    - op: split
      index: 2
      points:
        - line: 1
          col: 0
    - op: move
      index: 1
      count: 2
      to: 0

Operations run in order and each one addresses the notebook as the
previous operations left it. Move targets count positions after the
moved cells have been removed.

With --atomic (the default) a notebook is saved only when every
operation commits; a single rejection leaves the file untouched.
Multiple notebooks are edited independently, --parallel at a time.`

const editLongDescription = `Open a notebook in the interactive structural editor. Cells can be
joined, split off, moved, copied, deleted and toggled between code and
markup, with full undo and redo. Changes are kept in memory until saved.`

const joinLongDescription = `Join a cell with its neighbour into a single cell. The upper cell's
outputs and metadata are kept; its source is extended with the lower
cell's lines.

Joining above the first cell, below the last cell, or across different
cell kinds is rejected.`

const splitLongDescription = `Split a cell into multiple cells at the given points. Points are given
as LINE:COL, both 0-based, counted within the cell's source. The first
resulting cell keeps the outputs and metadata; later cells share the
kind and language.

Points at the very start or end of the cell text are dropped so a split
never produces an empty cell; a split with no effective points is
rejected.`

const moveLongDescription = `Move a contiguous range of cells to a new position. The target index is
counted in the notebook as it looks after the moved cells have been
removed: moving cells [0, 2) of a four-cell notebook to target 2 places
them at the end.`
