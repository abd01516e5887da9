package help

// UsageText lists the invocation shapes shown by -h, -help and --help.
const UsageText = `wordcounter [-s | -p] [options] <file.txt>
   wordcounter [-s | -p] [options] <file.txt> <file.txt> ...
   wordcounter [-s | -p] [options] <path/to/file.txt> ...`

// Description is printed below the usage lines.
const Description = `Counts occurrences of words in one or more .txt files.

Words are whitespace-delimited and keep only ASCII letters, hyphens and
apostrophes; case is preserved. Multiple files are counted as one corpus.

-s runs the count on a single thread and writes singlethread_result.txt.
-p splits the words into one chunk per worker and writes multithread_result.txt.
Workers default to the number of CPUs.

Examples:
  wordcounter -s book.txt
  wordcounter -p --workers 8 part1.txt part2.txt
  wordcounter -p --top 20 --manifest run.yaml book.txt`
